/*
Package dsl provides a fluent Go DSL for writing SWML documents.

It trades the explicit struct literals of package domain for short chained
calls, while still producing a plain *swml.Document:

	b := dsl.New()

	b.Section("main").
		Answer().
		Say("Welcome to Acme").
		Switch("call.to", func(s *dsl.SwitchBlock) {
			s.Case("+15550100", func(b *dsl.Block) { b.Transfer("sales") })
			s.Default(func(b *dsl.Block) { b.Execute("voicemail", nil) })
		})

	b.Section("sales").
		Connect(domain.Connect{To: domain.Ptr("+15550199")})

	out, err := b.Build().ToJSON()

Anything the DSL has no shortcut for can be appended with Block.Do.
*/
package dsl
