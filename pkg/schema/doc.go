// Package schema loads declarative form definitions from YAML and compiles
// them into rule lists.
//
// A definition names the form, optionally overrides the attention settings
// and lists the fields in display order:
//
//	name: signup
//	scroll_on_error: false
//	fields:
//	  - id: email
//	    label: Email
//	    type: email
//	    sanitize: [normalize_email]
//	    rules:
//	      - rule: required
//	        message: Email is required
//	      - rule: email
//	  - id: password
//	    type: password
//	    rules:
//	      - rule: min_len
//	        args: ["8"]
//
// Sanitize names resolve through sanitizer.Named and run before the rules.
// Rule names resolve through a Catalog. DefaultCatalog covers the builtins
// of package rules; applications add their own factories to a copy.
package schema
