package main

import (
	"log/slog"
	"os"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"ivaPrime/pkg/export"
	"ivaPrime/pkg/primer"
)

func writeSets(sets ...*primer.PrimerSet) error {
	export.WriteText(os.Stdout, sets)
	if xlsxOut != "" {
		slog.Info("SaveAs", "xlsx", xlsxOut)
		if err := export.WriteXlsx(xlsxOut, sets); err != nil {
			return err
		}
	}
	if csvOut != "" {
		slog.Info("SaveAs", "csv", csvOut)
		out := osUtil.Create(csvOut)
		defer simpleUtil.DeferClose(out)
		return export.WriteCSV(out, sets)
	}
	return nil
}
