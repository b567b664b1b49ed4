// Package faqdex provides a Go client for the faqdex FAQ answering service.
//
//	client := faqdex.New("http://localhost:8080",
//	    faqdex.WithAPIKey("secret"),
//	)
//	reply, _ := client.Ask(ctx, "What time does the library open?")
//	fmt.Println(reply.Answer)
//
// Record management calls require an API key when the server has admin
// authentication enabled.
package faqdex
