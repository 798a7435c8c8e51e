// Package wantlist reads the line-oriented want-list format.
//
//	#! LINEAR-PRIORITIES ITERATIONS=100     directives, before anything else
//	# comment
//	!BEGIN-OFFICIAL-NAMES
//	ITEM-A
//	ITEM-B : description is ignored
//	!END-OFFICIAL-NAMES
//	(alice) ITEM-A : ITEM-B ITEM-C ; ITEM-D
//	(bob) %DUMMY : ITEM-A
//
// A want list names its owner in parentheses, then the offered item, an
// optional colon, and the wanted items in order of preference. A semicolon
// marks a bigger step in preference. Names starting with % are dummy items.
// Unless CASE-SENSITIVE is given, everything is folded to upper case.
//
// Format violations are fatal and reported as *ParseError with the line
// number; semantic problems (unknown items, repeats) are left to package
// builder.
package wantlist
