package block

// Renderer is the external collaborator that draws a block. File parsing
// and GUI rendering are out of scope here; this seam lets a renderer
// package be built on top without the core depending on any drawing
// library.
type Renderer interface {
	DrawFootprint(b *Block)
	DrawSides(b *Block)
	DrawTop(b *Block)
}
