package logging

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// InitLogger configura o logger global. Em modo debug mostra tudo; fora dele
// só warnings e erros, para não sujar a saída em pipelines de CI.
func InitLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("erro ao inicializar logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
