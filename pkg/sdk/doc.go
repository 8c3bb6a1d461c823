// Package strdex provides a Go client for the strdex string analysis
// HTTP API.
//
// Strdex stores strings keyed by the SHA-256 digest of their exact value
// and computes structural properties (length, palindrome check, unique
// characters, word count, character frequency) at write time.
//
//	client := strdex.New("http://localhost:8080")
//	rec, _ := client.CreateString(ctx, "racecar")
//	fmt.Println(rec.Properties.IsPalindrome) // true
//
//	res, _ := client.ListStrings(ctx, strdex.ListOptions{
//	    IsPalindrome: strdex.Bool(true),
//	    MinLength:    strdex.Int(3),
//	})
//
//	qr, _ := client.Query(ctx, "all single word palindromic strings")
package strdex
