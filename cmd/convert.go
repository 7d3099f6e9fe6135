package cmd

import (
	"fmt"
	"os"

	"github.com/ahogen/cppcheck-codequality/internal/adapters"
	"github.com/ahogen/cppcheck-codequality/internal/config"
	"github.com/ahogen/cppcheck-codequality/internal/convert"
	"github.com/ahogen/cppcheck-codequality/internal/logging"
	"github.com/ahogen/cppcheck-codequality/internal/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inputFile string
var outputFile string
var baseDirs []string
var configFile string
var debugMode bool

var logger *zap.SugaredLogger

// Versão mais antiga do cppcheck contra a qual a conversão foi validada.
const minTestedCppcheck = "1.82"

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converte um relatório XML do CppCheck em um arquivo Code Quality JSON",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		logger = logging.Logger
		defer logger.Sync()

		opts := adapters.Options{BaseDirs: baseDirs}
		if cfg := loadConfig(); cfg != nil {
			opts.BaseDirs = append(opts.BaseDirs, cfg.BaseDirs...)
			opts.SeverityOverrides = cfg.Overrides()
		}

		logger.Debugf("Convertendo %s -> %s", inputFile, outputFile)

		if !parser.IsCppcheckReport(inputFile) {
			logger.Warnf("%s não aparenta ser um relatório XML do cppcheck", inputFile)
		}

		stats, err := convert.File(inputFile, outputFile, opts)
		if err != nil {
			logger.Errorw("Erro na conversão", "erro", err)
			os.Exit(1)
		}

		if stats.CppcheckVersion != "" && stats.CppcheckVersion < minTestedCppcheck {
			logger.Warnf("Relatório gerado pelo cppcheck %s; conversão validada a partir do %s", stats.CppcheckVersion, minTestedCppcheck)
		}
		if stats.Findings == 0 {
			logger.Warnf("Relatório vazio, nada a converter")
		}
		if stats.Degenerate > 0 {
			logger.Warnf("%d finding(s) sem location no XML receberam o local fallback", stats.Degenerate)
		}

		fmt.Printf("%d issue(s) gravados em %s\n", stats.Findings, outputFile)
	},
}

// loadConfig carrega a config explícita (-c) ou a default do diretório
// corrente, se existir. Config explícita inválida é fatal.
func loadConfig() *config.Config {
	path := configFile
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err != nil {
			return nil
		}
		path = config.DefaultFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Errorw("Erro ao carregar config", "erro", err)
		os.Exit(1)
	}
	logger.Debugf("Config carregada de %s", path)
	return cfg
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input-file", "i", "cppcheck.xml", "Relatório XML do cppcheck a converter")
	convertCmd.Flags().StringVarP(&outputFile, "output-file", "o", "cppcheck.json", "Arquivo JSON de saída")
	convertCmd.Flags().StringArrayVarP(&baseDirs, "base-dir", "b", nil, "Prefixo de diretório a remover dos caminhos (repetível)")
	convertCmd.Flags().StringVarP(&configFile, "config", "c", "", "Arquivo de configuração YAML (default: "+config.DefaultFile+", se existir)")
	convertCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(convertCmd)
}
