// Package pdf lays slides out on PDF pages.
//
// Every slide becomes one page. The slide kind selects a template from a
// catalog.Catalog; the template's decorations are filled first and the
// slide contents are then placed into the template areas in order. A slide
// of kind Style draws nothing: its config directives switch the active style
// for the slides that follow.
//
// Example:
//
//	cat, err := catalog.NewBuilder(catalog.OSLoader()).
//		WithStyle("styles/dark.yaml").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = pdf.Render(pdf.RenderRequest{
//		Reader:  strings.NewReader("---Title\nHello\nworld\n"),
//		Writer:  outFile,
//		Catalog: cat,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Style fonts are either PDF core fonts (Helvetica, Times, Courier) or paths
// to TrueType files, resolved against RenderRequest.BaseDir.
package pdf
