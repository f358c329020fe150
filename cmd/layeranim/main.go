package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/ivlev/layeranim/internal/animation"
	"github.com/ivlev/layeranim/internal/codeview"
	"github.com/ivlev/layeranim/internal/config"
	"github.com/ivlev/layeranim/internal/engine"
	"github.com/ivlev/layeranim/internal/system"
)

func main() {
	catalogPtr := flag.String("catalog", "", "Путь к YAML-каталогу (по умолчанию: самый свежий файл в catalogs/, иначе встроенный каталог)")
	builtinPtr := flag.Bool("builtin", false, "Использовать встроенный каталог, даже если в catalogs/ есть файлы")
	indexPtr := flag.Int("index", 0, "Индекс анимации")
	namePtr := flag.String("name", "", "Имя анимации (keyPath), имеет приоритет над -index")
	stylePtr := flag.String("style", codeview.DefaultStyle, "Стиль подсветки кода (none - без подсветки)")
	outDirPtr := flag.String("out", "output", "Папка для export")
	outFilePtr := flag.String("file", "", "Файл для qr (по умолчанию: <keyPath>.png)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки для export")
	qrSizePtr := flag.Int("qr-size", codeview.DefaultQRSize, "Размер QR-кода в пикселях")
	statsPtr := flag.Bool("stats", false, "Показать статистику памяти")
	verbosePtr := flag.Bool("v", false, "Подробный вывод")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Использование: layeranim [флаги] <%s>\n", strings.Join(engine.Commands, "|"))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := &config.Config{
		Command:     flag.Arg(0),
		CatalogPath: *catalogPtr,
		Index:       *indexPtr,
		Name:        *namePtr,
		Style:       *stylePtr,
		OutputDir:   *outDirPtr,
		OutputFile:  *outFilePtr,
		Workers:     *workersPtr,
		QRSize:      *qrSizePtr,
		ShowStats:   *statsPtr,
		Verbose:     *verbosePtr,
	}

	if cfg.CatalogPath == "" && !*builtinPtr {
		latest, err := system.FindLatestCatalog(system.CatalogDir)
		if err == nil {
			cfg.CatalogPath = latest
			fmt.Printf("[*] Выбран каталог: %s\n", latest)
		}
	}

	var cat *animation.Catalog
	if cfg.CatalogPath != "" {
		var err error
		cat, err = animation.ReadCatalog(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("[-] Ошибка загрузки каталога: %v", err)
		}
	} else {
		cat = animation.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	project := engine.NewProject(cfg, cat, os.Stdout)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}

	if cfg.ShowStats {
		report, err := system.MemoryReport()
		if err != nil {
			log.Printf("[!] Не удалось получить статистику: %v", err)
		} else {
			fmt.Printf("[*] %s\n", report)
		}
	}
}
