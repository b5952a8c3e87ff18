/*
Package swml builds SignalWire Markup Language (SWML) documents.

An SWML document is a set of named sections, each an ordered list of
instructions that a telephony runtime executes. This package assembles such
documents in memory and renders them as JSON or YAML; it never executes them.

# Usage

	doc := swml.New()
	main := doc.AddSection("main")
	main.Append(domain.ShortAnswer)
	main.Append(domain.Play{URL: domain.Ptr("say:Hello from SWML")})
	main.Append(domain.ShortHangup)

	out, err := doc.ToJSON()

renders

	{
	    "sections": {
	        "main": [
	            "answer",
	            { "play": { "url": "say:Hello from SWML" } },
	            "hangup"
	        ]
	    }
	}

(compacted here for brevity; ToJSON indents every level with four spaces).

# Instructions

The instruction catalogue lives in package domain. Each instruction is its
own Go type, so an instruction with a misspelled field or the wrong value type
does not compile. Checks the type system cannot express, such as required
fields or empty section names, are available through Document.Validate.

# Sections

Sections are stored by reference: a section attached to a document and
modified afterwards is rendered with its latest content. Adding a second
section under an existing name replaces the first one.

For a fluent way of writing whole documents see package dsl.
*/
package swml
