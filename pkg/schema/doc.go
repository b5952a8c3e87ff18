// Package schema validates dynamically typed data, most importantly decoded
// SWML documents.
//
// It defines a small type system: scalars (String, Int, Float, Bool, Any,
// Enum), composites (Slice, MapOf, OneOf, Object) and the SWML specific
// Instruction, Instructions and Result types. Schemas map field names to
// types for flat data such as template parameters:
//
//	params := schema.Schema{
//	    "sales":   schema.String(),
//	    "retries": schema.Int(),
//	}
//
//	if err := schema.Validate(params, data); err != nil {
//	    // Handle validation errors
//	}
//
// Whole documents are checked with ValidateDocument against the instruction
// Catalogue:
//
//	tree, _ := codec.Decode(raw, codec.YAML)
//	if err := schema.ValidateDocument(tree); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e) // field "sections.main[0].play.volume": expected float, got string
//	    }
//	}
//
// Every failure is reported as a *ValidationError whose Key is the path of
// the offending field, collected in an *AggregateError.
package schema
