package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// CatalogDir is where the CLI looks for catalog files by default.
const CatalogDir = "catalogs"

// FindLatestCatalog returns the most recently modified .yaml/.yml file in dir.
func FindLatestCatalog(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	extensions := []string{".yaml", ".yml"}
	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		isCatalog := false
		for _, ext := range extensions {
			if strings.HasSuffix(strings.ToLower(f.Name()), ext) {
				isCatalog = true
				break
			}
		}
		if isCatalog {
			info, err := f.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latestTime) {
				latestTime = info.ModTime()
				latestFile = filepath.Join(dir, f.Name())
			}
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов каталога", dir)
	}

	return latestFile, nil
}

// MemoryReport describes system memory usage in one line.
func MemoryReport() (string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Memory: %.1f%% used (%d MiB of %d MiB)",
		vm.UsedPercent, vm.Used>>20, vm.Total>>20), nil
}
