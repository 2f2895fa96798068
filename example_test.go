package idcheck_test

import (
	"fmt"

	"github.com/sufield/idcheck"
)

func ExampleParse() {
	id, err := idcheck.Parse("spiffe://example.org/ns/prod/sa/api-client")
	if err != nil {
		fmt.Println("invalid")
		return
	}
	fmt.Println(id.TrustDomain())
	fmt.Println(id.Path())
	// Output:
	// example.org
	// /ns/prod/sa/api-client
}

func ExampleValidate() {
	for _, candidate := range []string{
		"spiffe://example.org/svc/api",
		"spiffe://example.org/svc/",
	} {
		res := idcheck.Validate(candidate)
		fmt.Println(candidate, "->", res.Valid)
	}
	// Output:
	// spiffe://example.org/svc/api -> true
	// spiffe://example.org/svc/ -> false
}

func ExampleIsValid() {
	fmt.Println(idcheck.IsValid("spiffe://example.org"))
	fmt.Println(idcheck.IsValid("Spiffe://example.org"))
	// Output:
	// true
	// false
}
