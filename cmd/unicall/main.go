package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pchaumet/unicall/caller"
	"github.com/pchaumet/unicall/config"
	"github.com/pchaumet/unicall/llm"
	unilogger "github.com/pchaumet/unicall/logger"
	"github.com/pchaumet/unicall/retry"
)

func main() {
	var (
		serviceName = flag.String("service", "", "LLM service to use (openai, anthropic, google, xai, aristoteonmydocker)")
		model       = flag.String("model", "", "Model name for the selected service")
		prompt      = flag.String("prompt", "", "Prompt text. If empty, the prompt is read from stdin")
		configPath  = flag.String("config", "", "Path to config file (default: UNICALL_CONFIG or ~/.config/unicall/config.yaml)")
		logFile     = flag.String("logfile", "", "Path to log file. If not set, logs to stdout")
		pretty      = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
		retries     = flag.Uint64("retries", 0, "Retry attempts on overload signals (0 disables retries)")
		cooldown    = flag.Bool("cooldown", false, "Sleep the service cooldown after the call")
	)
	flag.Parse()

	if *logFile != "" && *pretty {
		fmt.Fprintf(os.Stderr, "Error: --logfile and --pretty are mutually exclusive\n")
		os.Exit(1)
	}

	logger, err := unilogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to load configuration, using defaults")
		cfg = config.DefaultConfig()
	}

	name := *serviceName
	if name == "" {
		name = cfg.Service
	}
	modelName := *model
	if modelName == "" {
		modelName = cfg.Model
	}

	service, err := llm.ParseService(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text := *prompt
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read prompt from stdin: %v\n", err)
			os.Exit(1)
		}
		text = string(data)
	}
	if text == "" {
		fmt.Fprintf(os.Stderr, "Error: empty prompt\n")
		os.Exit(1)
	}

	c, err := caller.New(service.String(), modelName, cfg.APIKeyFor(service), caller.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var result string
	if *retries > 0 {
		result, err = retry.CallWithBackoff(ctx, c, text, *retries)
	} else {
		result, err = c.Call(ctx, text)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)

	if *cooldown {
		c.WaitCooldown()
	}
}
