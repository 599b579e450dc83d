package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"ivaPrime/pkg/codon"
	"ivaPrime/pkg/config"
	"ivaPrime/pkg/export"
	"ivaPrime/pkg/primer"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input xlsx with Plasmids and Operations sheets",
	)
	outputDir = flag.String(
		"o",
		"",
		"output dir",
	)
	cfgFile = flag.String(
		"c",
		"",
		"settings file, yaml/json/toml",
	)
	orderTemplate = flag.String(
		"order",
		"",
		"vendor order form template xlsx",
	)
	orderSheet = flag.String(
		"sheet",
		"引物订购单",
		"sheet of the order form template",
	)
	verbose = flag.Bool(
		"v",
		false,
		"debug log",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *input == "" || *outputDir == "" {
		flag.PrintDefaults()
		log.Fatal("-i/-o required")
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var (
		cfg   = simpleUtil.HandleError(config.Load(config.New(), *cfgFile))
		usage = codon.Default()

		xlsx                    = simpleUtil.HandleError(excelize.OpenFile(*input))
		plasmidMap, plasmidList = LoadPlasmids(xlsx, plasmidSheet, cfg.Circular)
		operations              = simpleUtil.HandleError(LoadOperations(xlsx, operationSheet))

		resultXlsx = filepath.Join(*outputDir, "primers.xlsx")
		resultTxt  = filepath.Join(*outputDir, "primers.txt")
		orderXlsx  = filepath.Join(*outputDir, "primers.order.xlsx")
	)
	simpleUtil.CheckErr(xlsx.Close())
	if cfg.CodonTable != "" {
		usage = codon.Merge(usage, simpleUtil.HandleError(codon.Load(cfg.CodonTable)))
	}
	d := primer.NewDesigner(cfg.Settings, usage)

	slog.Info("Input", "plasmids", len(plasmidList), "operations", len(operations))
	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))

	results := make(chan designResult, len(operations)) // 缓冲通道
	var wg sync.WaitGroup
	for _, op := range operations {
		wg.Add(1)
		go func(op *Operation) {
			defer wg.Done()
			results <- runOperation(d, op, plasmidMap)
		}(op)
	}

	// 等待所有任务完成并关闭通道
	go func() {
		wg.Wait()
		close(results)
	}()

	var resultList []designResult
	for result := range results {
		resultList = append(resultList, result)
	}
	sort.Slice(resultList, func(i, j int) bool {
		return resultList[i].Operation.Index < resultList[j].Operation.Index
	})

	passed := lo.Filter(resultList, func(r designResult, _ int) bool { return r.Status == statusPass })
	sets := lo.Map(passed, func(r designResult, _ int) *primer.PrimerSet { return r.Set })
	slog.Info(
		"Batch",
		"pass", len(passed),
		"fail", len(resultList)-len(passed),
		"plasmids", lo.Uniq(lo.Map(passed, func(r designResult, _ int) string { return r.Operation.Plasmid })),
		"meanPrimers", lo.Mean(lo.Map(sets, func(s *primer.PrimerSet, _ int) float64 { return float64(len(s.Primers)) })),
	)

	out := simpleUtil.HandleError(export.NewWorkbook(sets))
	addStatusSheet(out, resultList)
	log.Printf("SaveAs(%s)", resultXlsx)
	simpleUtil.CheckErr(out.SaveAs(resultXlsx))

	txt := osUtil.Create(resultTxt)
	export.WriteText(txt, sets)
	simpleUtil.CheckErr(txt.Close())

	if *orderTemplate != "" {
		log.Printf("SaveAs(%s)", orderXlsx)
		simpleUtil.CheckErr(
			export.WriteOrder(*orderTemplate, *orderSheet, orderXlsx, sets, export.OrderColOffset, export.OrderRowOffset),
		)
	}
}
