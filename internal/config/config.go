package config

type Config struct {
	Command     string
	CatalogPath string // empty means the built-in catalog
	Index       int
	Name        string
	Style       string
	OutputDir   string
	OutputFile  string
	Workers     int
	QRSize      int
	ShowStats   bool
	Verbose     bool
}

// ExportParams describes one snippet written by the export command.
type ExportParams struct {
	Index   int
	KeyPath string
	Path    string
}
