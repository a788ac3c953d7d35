// File: cmd/glpi-import/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"pc-management/internal/glpi"
	"pc-management/internal/importer"
)

var (
	configFromEnv = glpi.ConfigFromEnv
	newClient     = func(cfg glpi.Config) importer.Client { return glpi.NewClient(cfg) }
	runImport     = importer.Run
	exitFunc      = os.Exit
)

func run(args []string) error {
	fs := flag.NewFlagSet("glpi-import", flag.ContinueOnError)
	csvPath := fs.String("csv", "data/pcs.csv", "欲匯入的 PC 清單 CSV 路徑")
	workers := fs.Int("workers", 4, "併發匯入的 worker 數量")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := configFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("GLPI 設定不完整: %w", err)
	}

	res, err := runImport(context.Background(), newClient(cfg), *csvPath, *workers)
	if err != nil {
		return fmt.Errorf("匯入中斷: %w", err)
	}

	log.Printf("匯入完成：成功 %d 筆，失敗 %d 筆", res.Imported, res.Failed)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
