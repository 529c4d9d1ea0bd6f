// Package catalog loads the style and slide templates a renderer lays slides
// out with.
//
// A style names a color palette, a font and a line spacing:
//
//	colors: ["#111827", "#2563eb", "#e5e7eb"]
//	font: Helvetica
//	lineSpace: 1.2
//	foreground: 0
//	background: 2
//
// A template file maps slide kinds to decorations (filled rectangles in a
// palette color) and content areas. Rectangles are fractions: decorations of
// the whole page, areas of the region inside the margin:
//
//	margin: {orig: {x: 0.05, y: 0.05}, size: {x: 0.9, y: 0.9}}
//	slides:
//	  Title:
//	    decoration:
//	      - {orig: {x: 0, y: 0.75}, size: {x: 1, y: 0.02}, color: 1}
//	    template:
//	      - {orig: {x: 0, y: 0}, size: {x: 1, y: 0.8}, fontSize: 36, orientation: bottom middle}
//	      - {orig: {x: 0, y: 0.8}, size: {x: 1, y: 0.2}, fontSize: 18}
//
// Both file kinds are YAML; JSON files parse as well. Built-in defaults cover
// the kinds Title, Head_Cont, Vert_Split and Two_Hor.
package catalog
