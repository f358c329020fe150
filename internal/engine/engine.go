package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/layeranim/internal/animation"
	"github.com/ivlev/layeranim/internal/codeview"
	"github.com/ivlev/layeranim/internal/config"
	"github.com/ivlev/layeranim/internal/host"
	"github.com/ivlev/layeranim/internal/watch"
)

// Commands lists what Run understands.
var Commands = []string{"list", "show", "code", "play", "export", "qr", "watch"}

type Project struct {
	Config  *config.Config
	Catalog *animation.Catalog
	Host    *host.Host
	Out     io.Writer
}

func NewProject(cfg *config.Config, cat *animation.Catalog, out io.Writer) *Project {
	h := host.New()
	h.Verbose = cfg.Verbose
	return &Project{
		Config:  cfg,
		Catalog: cat,
		Host:    h,
		Out:     out,
	}
}

func (p *Project) Run(ctx context.Context) error {
	switch p.Config.Command {
	case "list", "":
		return p.list()
	case "show":
		return p.show()
	case "code":
		return p.code()
	case "play":
		return p.play()
	case "export":
		return p.export(ctx)
	case "qr":
		return p.qr()
	case "watch":
		return p.watch(ctx)
	}
	return fmt.Errorf("неизвестная команда %q (доступны: %s)", p.Config.Command, strings.Join(Commands, ", "))
}

// selected resolves -name or -index to a catalog index. The index is not
// range checked; every catalog accessor handles a bad one.
func (p *Project) selected() (int, error) {
	if p.Config.Name == "" {
		return p.Config.Index, nil
	}
	i, ok := p.Catalog.Index(p.Config.Name)
	if !ok {
		return 0, fmt.Errorf("в каталоге нет анимации %q", p.Config.Name)
	}
	return i, nil
}

func (p *Project) list() error {
	for i := 0; i < p.Catalog.Count(); i++ {
		name, _ := p.Catalog.NameAt(i)
		d, _ := p.Catalog.AnimationAt(i)
		fmt.Fprintf(p.Out, "%3d  %-24s %-9s %s\n", i, name, d.Kind(), p.Catalog.FamilyAt(i))
	}
	return nil
}

func (p *Project) show() error {
	i, err := p.selected()
	if err != nil {
		return err
	}
	d, ok := p.Catalog.AnimationAt(i)
	if !ok {
		return fmt.Errorf("%w %d", host.ErrNoAnimation, i)
	}
	fmt.Fprint(p.Out, Describe(d))
	fmt.Fprintf(p.Out, "layer:         %s\n", p.Catalog.FamilyAt(i))
	fmt.Fprintf(p.Out, "showsImage:    %v\n", p.Catalog.ShowsImageAt(i))
	fmt.Fprintf(p.Out, "masksToBounds: %v\n", p.Catalog.MasksToBoundsAt(i))
	return nil
}

// Describe renders a description field by field.
func Describe(d animation.Description) string {
	var b strings.Builder
	switch a := d.(type) {
	case *animation.BasicAnimation:
		fmt.Fprintf(&b, "keyPath:       %s\n", a.KeyPath)
		fmt.Fprintf(&b, "kind:          %s\n", a.Kind())
		fmt.Fprintf(&b, "from:          %s\n", a.From.Code())
		fmt.Fprintf(&b, "to:            %s\n", a.To.Code())
		writeTiming(&b, a.Duration, a.RepeatCount, a.Autoreverses)
	case *animation.KeyframeAnimation:
		fmt.Fprintf(&b, "keyPath:       %s\n", a.KeyPath)
		fmt.Fprintf(&b, "kind:          %s\n", a.Kind())
		for i, v := range a.Values {
			if i < len(a.KeyTimes) {
				fmt.Fprintf(&b, "  %5.3f  %s\n", a.KeyTimes[i], v.Code())
			} else {
				fmt.Fprintf(&b, "  %5s  %s\n", "-", v.Code())
			}
		}
		writeTiming(&b, a.Duration, a.RepeatCount, a.Autoreverses)
	}
	return b.String()
}

func writeTiming(b *strings.Builder, duration, repeat float64, reverses bool) {
	fmt.Fprintf(b, "duration:      %gs\n", duration)
	if math.IsInf(repeat, 1) {
		b.WriteString("repeatCount:   forever\n")
	} else {
		fmt.Fprintf(b, "repeatCount:   %g\n", repeat)
	}
	fmt.Fprintf(b, "autoreverses:  %v\n", reverses)
}

func (p *Project) code() error {
	i, err := p.selected()
	if err != nil {
		return err
	}
	// Out of range indexes still print the "not found" comment.
	return codeview.Highlight(p.Out, p.Catalog.CodeAt(i), p.Config.Style)
}

func (p *Project) play() error {
	i, err := p.selected()
	if err != nil {
		return err
	}
	if err := p.Host.Play(p.Catalog, i); err != nil {
		return err
	}
	family, keyPath, _ := p.Host.Playing()
	fmt.Fprintf(p.Out, "[>] %s на слое %s\n", keyPath, family)
	for _, f := range animation.AllFamilies {
		l := p.Host.Layer(f)
		state := "ожидание"
		if l.Hidden {
			state = "скрыт"
		} else if len(l.Animations) > 0 {
			state = "анимация"
		}
		fmt.Fprintf(p.Out, "    %-10s %s\n", f, state)
	}
	fmt.Fprintf(p.Out, "    masksToBounds: %v\n", p.Host.MasksToBounds())
	return nil
}

func (p *Project) export(ctx context.Context) error {
	dir := p.Config.OutputDir
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = 1
	}

	count := p.Catalog.Count()
	var done atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		params := SnippetParams(p.Catalog, i, dir)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(params.Path, []byte(p.Catalog.CodeAt(params.Index)), 0644); err != nil {
				return fmt.Errorf("сниппет %s: %w", params.KeyPath, err)
			}
			if p.Config.Verbose {
				log.Printf("[>] Ready: %d/%d", done.Add(1), count)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := animation.WriteCatalog(p.Catalog, catalogPath); err != nil {
		return fmt.Errorf("ошибка записи каталога: %w", err)
	}
	fmt.Fprintf(p.Out, "[+++] Экспортировано %d анимаций в %s\n", count, dir)
	return nil
}

// SnippetParams names the export file for the preset at index.
func SnippetParams(c *animation.Catalog, index int, dir string) config.ExportParams {
	name, _ := c.NameAt(index)
	file := fmt.Sprintf("%02d_%s.swift", index, strings.ReplaceAll(name, ".", "_"))
	return config.ExportParams{Index: index, KeyPath: name, Path: filepath.Join(dir, file)}
}

func (p *Project) qr() error {
	i, err := p.selected()
	if err != nil {
		return err
	}
	name, ok := p.Catalog.NameAt(i)
	if !ok {
		return fmt.Errorf("%w %d", host.ErrNoAnimation, i)
	}
	out := p.Config.OutputFile
	if out == "" {
		out = strings.ReplaceAll(name, ".", "_") + ".png"
	}
	if err := codeview.WriteQR(p.Catalog.CodeAt(i), out, p.Config.QRSize); err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "[+++] QR-код сохранен: %s\n", out)
	return nil
}

// watch reloads the catalog file whenever it changes. Each reload builds a
// new catalog; indexes from the previous one are not carried over.
func (p *Project) watch(ctx context.Context) error {
	if p.Config.CatalogPath == "" {
		return fmt.Errorf("для watch нужен -catalog")
	}
	target, err := filepath.Abs(p.Config.CatalogPath)
	if err != nil {
		return err
	}
	w, err := watch.New(filepath.Dir(target))
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(p.Out, "[*] Слежение за %s (%d анимаций)\n", p.Config.CatalogPath, p.Catalog.Count())
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors:
			log.Printf("[!] Ошибка наблюдения: %v", err)
		case name := <-w.Events:
			if abs, err := filepath.Abs(name); err != nil || abs != target {
				continue
			}
			cat, err := animation.ReadCatalog(target)
			if err != nil {
				fmt.Fprintf(p.Out, "[!] Каталог не загружен, остается прежний: %v\n", err)
				continue
			}
			p.Catalog = cat
			fmt.Fprintf(p.Out, "[*] Каталог перезагружен: %d анимаций\n", cat.Count())
		}
	}
}
