// File: example_test.go
// Title: Object Cloner Examples
// Description: Runnable documentation examples for the objectx package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial examples

package objectx_test

import (
	"fmt"

	"github.com/msto63/gox/utils/objectx"
)

type person struct {
	Name    string
	Friends []string
}

func ExampleCloneT() {
	original := person{Name: "Ada", Friends: []string{"Grace"}}

	clone, _ := objectx.CloneT(original)
	clone.Friends[0] = "Edsger"

	fmt.Println(original.Friends[0], clone.Friends[0])
	// Output: Grace Edsger
}

func ExampleWithExclude() {
	original := person{Name: "Ada", Friends: []string{"Grace"}}

	clone, _ := objectx.CloneT(original, objectx.WithExclude("Name"))

	fmt.Printf("%q %v\n", clone.Name, clone.Friends)
	// Output: "" [Grace]
}

func ExampleToJSON() {
	data, _ := objectx.ToJSON(person{Name: "Ada"})
	fmt.Println(string(data))
	// Output: {"Name":"Ada","Friends":null}
}
