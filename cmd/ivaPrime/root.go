package main

import (
	"log"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"ivaPrime/pkg/codon"
	"ivaPrime/pkg/config"
	"ivaPrime/pkg/nucleotide"
	"ivaPrime/pkg/primer"
)

var (
	v   = config.New()
	cfg *config.Config

	cfgFile string
	verbose bool
	xlsxOut string
	csvOut  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ivaPrime",
	Short: "Design primers for In Vivo Assembly cloning",
	Long: `Design primers for In Vivo Assembly cloning.

Insertions, deletions and mutations on a plasmid get one primer pair whose
5' homologous regions recombine in vivo. Plasmids are read from FASTA files,
raw sequence files or given literally.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		slog.Debug("Config", "config", cfgFile, "settings", cfg.Settings, "circular", cfg.Circular)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	var (
		pf = rootCmd.PersistentFlags()
		d  = primer.DefaultSettings()
	)
	pf.StringVarP(&cfgFile, "config", "c", "", "settings file, yaml/json/toml")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug log")
	pf.StringVar(&xlsxOut, "xlsx", "", "also write primers to this xlsx")
	pf.StringVar(&csvOut, "csv", "", "also write primers to this csv")

	pf.Bool("symmetric", d.Symmetric, "symmetric primers")
	pf.Bool("circular", true, "raw sequences are circular plasmids")
	pf.String("organism", d.Organism, "codon usage organism of amino acid inserts")
	pf.String("codon-table", "", "extra codon usage JSON")
	pf.Bool("scale-codon-frequencies", d.ScaleCodons, "favor common codons when back-translating")
	pf.Float64("hr-tm", d.HRTm, "homologous region Tm")
	pf.Float64("hr-subcloning-tm", d.HRSubcloningTm, "homologous region Tm of subcloning primers")
	pf.Int("hr-min-length", d.HRMinLength, "shortest homologous region")
	pf.Float64("tbr-tm", d.TBRTm, "template-binding region Tm")
	pf.Int("tbr-min-length", d.TBRMinLength, "shortest template-binding region")
	pf.Float64("max-tm-short-insertion", d.MaxTmShortInsertion, "insertions up to this Tm fit in the primer overhangs")
	pf.String("tm-algorithm", string(d.Tm.Algorithm), "Tm algorithm, oligoCalc or nnSantaLucia")
	pf.Float64("primer-concentration", d.Tm.PrimerConcentrationNM, "primer concentration nM, nnSantaLucia only")
	pf.Float64("salt", d.Tm.SaltConcentrationM, "salt concentration M, 0 for no correction")
	pf.String("salt-correction", string(d.Tm.SaltCorrection), "SchildkrautLifson, Owczarzy or OwczarzyKelvin")
	pf.Float64("dmso", d.Tm.DMSOPercent, "DMSO percent")
	pf.String("tm-symmetry", string(d.Tm.Symmetry), "self-complementary test, reverseComplement or complement")

	for key, name := range settingFlags {
		simpleUtil.CheckErr(v.BindPFlag(key, pf.Lookup(name)))
	}
}

// settingFlags config key to persistent flag
var settingFlags = map[string]string{
	"symmetric-primers":          "symmetric",
	"circular":                   "circular",
	"organism":                   "organism",
	"codon-table":                "codon-table",
	"scale-codon-frequencies":    "scale-codon-frequencies",
	"hr-tm":                      "hr-tm",
	"hr-subcloning-tm":           "hr-subcloning-tm",
	"hr-min-length":              "hr-min-length",
	"tbr-tm":                     "tbr-tm",
	"tbr-min-length":             "tbr-min-length",
	"max-tm-short-insertion":     "max-tm-short-insertion",
	"tm.algorithm":               "tm-algorithm",
	"tm.primer-concentration-nm": "primer-concentration",
	"tm.salt-concentration-m":    "salt",
	"tm.salt-correction":         "salt-correction",
	"tm.dmso-percent":            "dmso",
	"tm.symmetry":                "tm-symmetry",
}

// codonUsage embedded tables merged with codon-table
func codonUsage() (nucleotide.CodonUsage, error) {
	usage := codon.Default()
	if cfg.CodonTable == "" {
		return usage, nil
	}
	extra, err := codon.Load(cfg.CodonTable)
	if err != nil {
		return nil, err
	}
	return codon.Merge(usage, extra), nil
}

func designer() (*primer.Designer, error) {
	usage, err := codonUsage()
	if err != nil {
		return nil, err
	}
	return primer.NewDesigner(cfg.Settings, usage), nil
}
