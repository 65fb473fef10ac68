package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/aggregator"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/capture"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/config"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/decode"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/model"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/report"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/tokens"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/logutil"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configFile   = flag.String("config", "", "Optional YAML config file")
		modelPath    = flag.String("model", "", "Model file")
		inputPath    = flag.String("in", "", "Input tokens file")
		outputPath   = flag.String("out", "", "Output tokens file")
		maxNewTokens = flag.Int("max-new-tokens", 64, "Maximum tokens to generate")
		stopToken    = flag.Int64("stop-token", -1, "Stop token id (negative disables)")
		topN         = flag.Int("top", report.DefaultTopN, "Rows in the kernel summary")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logutil.InitLogger()

	logger := logutil.GetLogger()
	defer logger.Sync()

	go func() {
		sigch := make(chan os.Signal, 1)
		signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigch
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fail(logger, err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.ModelPath = *modelPath
		case "in":
			cfg.InputPath = *inputPath
		case "out":
			cfg.OutputPath = *outputPath
		case "max-new-tokens":
			cfg.MaxNewTokens = *maxNewTokens
		case "stop-token":
			cfg.StopToken = *stopToken
		case "top":
			cfg.TopN = *topN
		}
	})
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		return fail(logger, err)
	}

	prompt, err := tokens.Load(cfg.InputPath)
	if err != nil {
		return fail(logger, err)
	}
	logger.Info("Loaded prompt", zap.Int("tokens", len(prompt)))

	m, err := model.Open(cfg.ModelPath)
	if err != nil {
		return fail(logger, err)
	}
	defer m.Close()

	sess := capture.Start()
	seq, err := decode.Run(ctx, model.Instrument(m, sess), prompt, decode.Options{
		MaxNewTokens: cfg.MaxNewTokens,
		StopToken:    cfg.StopToken,
	})
	events := sess.Close()
	if err != nil {
		return fail(logger, err)
	}

	if err := tokens.Write(cfg.OutputPath, seq); err != nil {
		return fail(logger, err)
	}
	fmt.Printf("Generated %d tokens.\n", len(seq))

	agg := aggregator.New()
	agg.FoldAll(events)
	if err := report.Render(os.Stdout, agg.Stats(), cfg.TopN); err != nil {
		return fail(logger, fmt.Errorf("%w: %v", types.ErrOutput, err))
	}
	return 0
}

func fail(logger *zap.Logger, err error) int {
	logger.Error("Run failed", zap.Error(err))
	switch {
	case errors.Is(err, types.ErrInput):
		return 1
	case errors.Is(err, types.ErrOutput):
		return 3
	default:
		return 2
	}
}
