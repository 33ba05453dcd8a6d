package main

import (
	"fmt"
	"io"

	"github.com/Cloud-Foundations/diskspeed/lib/diskbench"
	"github.com/schollz/progressbar/v3"
)

type progressBar struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

func newProgressBar(writer io.Writer) *progressBar {
	return &progressBar{writer: writer}
}

func (p *progressBar) Begin(phase diskbench.Phase) {
	p.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(phase.String()+":"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerHead:    ">",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true))
}

func (p *progressBar) SetPercent(phase diskbench.Phase, percent uint) {
	if p.bar != nil {
		p.bar.Set(int(percent))
	}
}

func (p *progressBar) End(phase diskbench.Phase) {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
	fmt.Fprintln(p.writer, " done")
}
