package money_test

import (
	"fmt"

	"github.com/amirasaad/valobs/pkg/currency"
	"github.com/amirasaad/valobs/pkg/money"
)

func ExampleNew() {
	m, err := money.New(1050, currency.USD)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)

	// A zero amount never constructs.
	_, err = money.New(0, currency.USD)
	fmt.Println("error:", err)

	// Output:
	// 1050 USD
	// error: amount must be positive: got zero
}

func ExampleMoney_Add() {
	a := money.Must(1050, currency.USD)
	b := money.Must(950, currency.USD)

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)

	// Currencies must match.
	_, err = a.Add(money.Must(100, currency.EUR))
	fmt.Println("error:", err)

	// Output:
	// 2000 USD
	// error: mismatched currencies: USD and EUR
}

func ExampleMoney_Allocate() {
	m := money.Must(100, currency.USD)

	parts, err := m.Allocate(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, part := range parts {
		fmt.Println(part)
	}

	// Output:
	// 34 USD
	// 33 USD
	// 33 USD
}

func ExampleMoney_AllocateByRatio() {
	m := money.Must(100, currency.USD)

	parts, err := m.AllocateByRatio([]float64{1.0, 2.0, 3.0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, part := range parts {
		fmt.Println(part)
	}

	// Output:
	// 17 USD
	// 33 USD
	// 50 USD
}
