package blockart_test

import (
	"fmt"
	"log"

	"github.com/bbsfont/blockart"
)

func ExampleRender() {
	art, err := blockart.Render([]string{"10", "00"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(art)
	// Output:
	// ____
	// /\\\__
	//  \///_
	//   ____
}

func ExampleRender_horizontalPair() {
	art, err := blockart.Render([]string{"110", "000"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(art)
	// Output:
	// ______
	// /\\\\\__
	//  \/////_
	//   ______
}

func ExampleValidateArt() {
	rows := []string{"1"}
	art, err := blockart.Render(rows)
	if err != nil {
		log.Fatal(err)
	}
	if err := blockart.ValidateArt(art, rows); err != nil {
		log.Fatal(err)
	}
	fmt.Println("art matches bitmap")
	// Output:
	// art matches bitmap
}
