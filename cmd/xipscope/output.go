package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"text/tabwriter"

	"github.com/omeyang/xipscope/pkg/util/xnet"
)

// report 是单个地址的输出记录。
type report struct {
	Source string `json:"source,omitempty"`
	Line   int    `json:"line,omitempty"`
	Input  string `json:"input"`

	Addr    string       `json:"addr"`
	Version xnet.Version `json:"version"`
	Global  bool         `json:"global"`
	Label   string       `json:"label"`

	// Block 是地址命中的最长特殊用途前缀，未命中时为 nil。
	Block *xnet.Block `json:"block,omitempty"`

	// Scope 仅对作用域已登记的 IPv6 多播地址非空。
	Scope string `json:"multicast_scope,omitempty"`

	// Classification 仅 classify 命令输出。
	Classification *xnet.Classification `json:"classification,omitempty"`
}

func newReport(input string, addr netip.Addr) report {
	c := xnet.Classify(addr)
	r := report{
		Input:   input,
		Addr:    addr.WithZone("").String(),
		Version: c.Version,
		Global:  c.IsGlobal,
		Label:   c.String(),
	}
	if blk, ok := xnet.LookupBlock(addr); ok {
		r.Block = &blk
	}
	if scope, ok := xnet.MulticastScopeOf(addr); ok {
		r.Scope = scope.String()
	}
	return r
}

func (r report) reach() string {
	if r.Global {
		return "global"
	}
	return "non-global"
}

func (r report) blockText() string {
	if r.Block == nil {
		return "-"
	}
	return r.Block.Prefix.String() + " (" + r.Block.Name + ")"
}

// summary 是 scan 命令的统计结果。
type summary struct {
	Total     int `json:"total"`
	Global    int `json:"global"`
	NonGlobal int `json:"non_global"`
	Invalid   int `json:"invalid"`
}

func (s *summary) add(o summary) {
	s.Total += o.Total
	s.Global += o.Global
	s.NonGlobal += o.NonGlobal
	s.Invalid += o.Invalid
}

// printer 按 text（对齐表格）或 json（每行一个对象）输出结果。
type printer struct {
	format string
	tw     *tabwriter.Writer
	enc    *json.Encoder
	header bool
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{format: format}
	if format == outputJSON {
		p.enc = json.NewEncoder(w)
	} else {
		p.tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	}
	return p
}

// row 输出一行。text 格式下首次调用时先输出 header。
func (p *printer) row(v any, header []string, cols ...string) error {
	if p.enc != nil {
		return p.enc.Encode(v)
	}
	if !p.header && len(header) > 0 {
		p.header = true
		if err := p.writeCols(header); err != nil {
			return err
		}
	}
	return p.writeCols(cols)
}

func (p *printer) writeCols(cols []string) error {
	for i, c := range cols {
		sep := "\t"
		if i == len(cols)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(p.tw, c+sep); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) flush() error {
	if p.tw != nil {
		return p.tw.Flush()
	}
	return nil
}

var (
	classifyHeader = []string{"ADDRESS", "VERSION", "REACH", "LABEL", "BLOCK", "SCOPE"}
	checkHeader    = []string{"ADDRESS", "REACH", "BLOCK"}
	scanHeader     = []string{"SOURCE", "ADDRESS", "REACH", "LABEL", "BLOCK"}
	blocksHeader   = []string{"PREFIX", "NAME", "REACH"}
)

func (p *printer) classify(r report) error {
	scope := r.Scope
	if scope == "" {
		scope = "-"
	}
	return p.row(r, classifyHeader, r.Addr, r.Version.String(), r.reach(), r.Label, r.blockText(), scope)
}

func (p *printer) check(r report) error {
	return p.row(r, checkHeader, r.Addr, r.reach(), r.blockText())
}

func (p *printer) scan(r report) error {
	return p.row(r, scanHeader, r.Source+":"+strconv.Itoa(r.Line), r.Addr, r.reach(), r.Label, r.blockText())
}

func (p *printer) block(b xnet.Block) error {
	reach := "non-global"
	if b.Global {
		reach = "global"
	}
	return p.row(b, blocksHeader, b.Prefix.String(), b.Name, reach)
}

// summary 输出统计行；text 格式下位于表格之后。
func (p *printer) summary(w io.Writer, s summary) error {
	if p.enc != nil {
		return p.enc.Encode(struct {
			Summary summary `json:"summary"`
		}{s})
	}
	if err := p.flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total=%d global=%d non_global=%d invalid=%d\n",
		s.Total, s.Global, s.NonGlobal, s.Invalid)
	return err
}
