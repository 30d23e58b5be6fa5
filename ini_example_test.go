// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import "fmt"

func Example() {
	doc := Parse(`
[HEADER]
VERSION=3 ; format version

[CAR_0]
MODEL=ks_mazda_mx5
MASS=1090.5 // kg
`)

	car := doc.Section("CAR_0")
	car.SetBool("ACTIVE", true)

	fmt.Println(doc.Section("HEADER").GetInt("VERSION", 1))
	fmt.Println(car.GetDouble("MASS", 0))
	fmt.Print(doc.Serialize())
	// Output:
	// 3
	// 1090.5
	// [HEADER]
	// VERSION=3
	//
	// [CAR_0]
	// MODEL=ks_mazda_mx5
	// MASS=1090.5
	// ACTIVE=1
}

func ExampleDocument_SectionsByPrefix() {
	doc := Parse("[CAR_0]\nMODEL=a\n[CAR_1]\nMODEL=b\n[CAR_3]\nMODEL=d\n")

	for s := range doc.SectionsByPrefix("CAR", 0) {
		model, _ := s.Get("MODEL")
		fmt.Println(s.Name(), model)
	}
	// Output:
	// CAR_0 a
	// CAR_1 b
}
