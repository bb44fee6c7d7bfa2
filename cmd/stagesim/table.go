package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/stagesim/world"
)

func printModelTable(w *world.World) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Token", "X", "Y", "A", "Stall"})
	for _, m := range w.Models() {
		p := m.Pose()
		t.AppendRow(table.Row{m.ID(), m.Token(), fmt.Sprintf("%.3f", p.X), fmt.Sprintf("%.3f", p.Y), fmt.Sprintf("%.3f", p.A), m.Stall()})
	}
	t.Render()
}
