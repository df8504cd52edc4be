package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"code_error_explainer/batch"
	"code_error_explainer/explainer"
	"code_error_explainer/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	codeFile := flag.String("code-file", "", "explain a single source file and print the result")
	errMsg := flag.String("error", "", "error message accompanying -code-file")
	inputDir := flag.String("input", "", "directory of source files for batch mode")
	outPath := flag.String("out", "", "report output path for batch mode")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	useMock := flag.Bool("mock", false, "use the offline mock model instead of a real provider")
	flag.Parse()

	cfg, err := explainer.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	llm, err := buildLLM(cfg, *useMock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	bot, err := explainer.NewBot(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(bot, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()

	// One-shot single file mode
	if *codeFile != "" {
		code, err := os.ReadFile(*codeFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		res := bot.ExplainError(ctx, string(code), *errMsg)
		fmt.Println(res.TextOrReason())
		if !res.OK {
			os.Exit(1)
		}
		return
	}

	// Non-interactive batch mode
	if *inputDir != "" || *outPath != "" {
		dir := *inputDir
		if dir == "" {
			dir = cfg.InputDir
		}
		out := *outPath
		if out == "" {
			out = cfg.ReportPath
		}
		runBatch(ctx, bot, dir, out)
		return
	}

	runInteractive(ctx, bot, cfg)
}

func runInteractive(ctx context.Context, bot *explainer.Bot, cfg explainer.Config) {
	fmt.Println("Code Error Explanation Bot")
	fmt.Println(strings.Repeat("=", 50))

	if err := batch.WriteSampleErrorFiles(cfg.InputDir); err != nil {
		log.Printf("[cli] could not create sample files: %v", err)
	} else {
		fmt.Printf("Sample error code files created in %s\n", cfg.InputDir)
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Print("Select mode:\n1. Single error analysis\n2. Batch analysis of folder\nPlease enter 1 or 2: ")
	if !in.Scan() {
		return
	}

	switch strings.TrimSpace(in.Text()) {
	case "1":
		fmt.Println("\nPlease enter the error code to analyze (enter 'END' to finish):")
		var lines []string
		for in.Scan() {
			if strings.TrimSpace(in.Text()) == "END" {
				break
			}
			lines = append(lines, in.Text())
		}
		fmt.Print("\nError message (optional, press Enter to skip): ")
		var errMsg string
		if in.Scan() {
			errMsg = strings.TrimSpace(in.Text())
		}

		fmt.Println("\nAnalyzing...")
		res := bot.ExplainError(ctx, strings.Join(lines, "\n"), errMsg)
		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("AI Assistant Explanation:")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(res.TextOrReason())

	case "2":
		fmt.Printf("\nAnalyzing code in %s folder...\n", cfg.InputDir)
		runBatch(ctx, bot, cfg.InputDir, cfg.ReportPath)

	default:
		fmt.Println("Invalid selection")
	}
}

func runBatch(ctx context.Context, bot *explainer.Bot, inputDir, reportPath string) {
	runner, err := batch.NewRunner(bot, "", log.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cases, status := runner.Run(ctx, inputDir)
	switch status {
	case batch.StatusDirMissing:
		fmt.Fprintf(os.Stderr, "Error: input folder %q does not exist\n", inputDir)
	case batch.StatusEmpty:
		fmt.Println("No source files found or processed successfully")
	default:
		if err := batch.WriteReport(reportPath, batch.Render(cases)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Analysis complete! Result saved to %s\n", reportPath)
	}
}

func buildLLM(cfg explainer.Config, useMock bool) (explainer.LLMClient, error) {
	if useMock {
		return explainer.MockLLM{}, nil
	}
	settings, err := cfg.ResolveSettings()
	if err != nil {
		return nil, err
	}
	switch settings.Provider {
	case "openai":
		return explainer.NewOpenAILLMFromConfig(settings)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is mandatory.
		if settings.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return explainer.NewOpenAILLMFromConfig(settings)
	case "gemini":
		return explainer.NewGeminiLLMFromConfig(settings)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", settings.Provider)
	}
}
