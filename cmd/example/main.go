// Package main demonstrates basic kanren usage patterns: unification,
// disjunction, list relations, and a small relational database query.
package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/metdinov/ex-logic/pkg/kanren"
)

func main() {
	fmt.Println("=== kanren Examples ===")
	fmt.Println()

	basicUnification()
	multipleChoices()
	listOperations()
	relationExample()
	engineWithLogging()
}

// basicUnification demonstrates simple unification via run.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	results := kanren.Run(1, []string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.Eq(vs[0], kanren.NewStr("hello"))
	})
	fmt.Printf("   q = \"hello\" => %v\n", results)

	results = kanren.Run(1, []string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.Eq(vs[0], kanren.NewNum(42))
	})
	fmt.Printf("   q = 42 => %v\n", results)
	fmt.Println()
}

// multipleChoices demonstrates disjunction (choice points).
func multipleChoices() {
	fmt.Println("2. Multiple Choices (Disjunction):")

	results := kanren.RunAllNamed([]string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.DisjAll(
			kanren.Eq(vs[0], kanren.NewNum(1)),
			kanren.Eq(vs[0], kanren.NewNum(2)),
			kanren.Eq(vs[0], kanren.NewNum(3)),
		)
	})
	fmt.Printf("   q ∈ {1, 2, 3} => %v\n", results)
	fmt.Println()
}

// listOperations demonstrates list construction and the Appendo relation.
func listOperations() {
	fmt.Println("3. List Operations:")

	list123 := kanren.ListFrom(kanren.NewNum(1), kanren.NewNum(2), kanren.NewNum(3))
	results := kanren.Run(1, []string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.Eq(vs[0], list123)
	})
	fmt.Printf("   q = [1, 2, 3] => %v\n", results)

	list12 := kanren.ListFrom(kanren.NewNum(1), kanren.NewNum(2))
	list34 := kanren.ListFrom(kanren.NewNum(3), kanren.NewNum(4))
	results = kanren.Run(1, []string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.Appendo(list12, list34, vs[0])
	})
	fmt.Printf("   append([1, 2], [3, 4]) => %v\n", results)

	list1234 := kanren.ListFrom(kanren.NewNum(1), kanren.NewNum(2), kanren.NewNum(3), kanren.NewNum(4))
	results = kanren.Run(1, []string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.Appendo(vs[0], list34, list1234)
	})
	fmt.Printf("   what + [3, 4] = [1, 2, 3, 4]? => %v\n", results)
	fmt.Println()
}

// relationExample demonstrates a small relational database.
func relationExample() {
	fmt.Println("4. Relational Programming:")

	likes := func(person, food kanren.Term) kanren.Goal {
		return kanren.DisjAll(
			kanren.ConjAll(kanren.Eq(person, kanren.NewSym("alice")), kanren.Eq(food, kanren.NewSym("pizza"))),
			kanren.ConjAll(kanren.Eq(person, kanren.NewSym("bob")), kanren.Eq(food, kanren.NewSym("burgers"))),
			kanren.ConjAll(kanren.Eq(person, kanren.NewSym("alice")), kanren.Eq(food, kanren.NewSym("salad"))),
		)
	}

	results := kanren.RunAllNamed([]string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return likes(kanren.NewSym("alice"), vs[0])
	})
	fmt.Printf("   what does alice like? => %v\n", results)

	results = kanren.RunAllNamed([]string{"person", "food"}, func(vs []kanren.Var) kanren.Goal {
		return likes(vs[0], vs[1])
	})
	fmt.Printf("   all person/food pairs => %v\n", results)
	fmt.Println()
}

// engineWithLogging demonstrates Engine, the host-facing wrapper that
// bundles an IDGen with a structured logger.
func engineWithLogging() {
	fmt.Println("5. Engine with Structured Logging:")

	logger := hclog.New(&hclog.LoggerOptions{Name: "kanren-example", Level: hclog.Debug})
	engine, err := kanren.NewEngine(
		kanren.WithLogger(logger),
		kanren.WithConfig(kanren.EngineConfig{MaxAnswers: 2}),
	)
	if err != nil {
		fmt.Printf("   engine construction failed: %v\n", err)
		return
	}

	results := engine.RunAll([]string{"q"}, func(vs []kanren.Var) kanren.Goal {
		return kanren.DisjAll(
			kanren.Eq(vs[0], kanren.NewNum(1)),
			kanren.Eq(vs[0], kanren.NewNum(2)),
			kanren.Eq(vs[0], kanren.NewNum(3)),
		)
	})
	fmt.Printf("   MaxAnswers=2 caps the 3-way disjunction => %v\n", results)
}
