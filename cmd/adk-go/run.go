// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build adk

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	mcpserver "github.com/sailflow/planks-mcp/src/mcp-server"
	mcptransport "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/mcptoolset"
	"google.golang.org/genai"
)

// This example wires the planks catalog into an ADK agent through the in-memory
// MCP transport, so the agent can look up components without a subprocess.
//
// Prerequisites:
// - Set GOOGLE_API_KEY environment variable
// - Set PLANKS_ROOT to a planks checkout (or PLANKS_MCP_CONFIG_FILE to a config file)
// - Build with: go run -tags adk ./cmd/adk-go

func localMCPTransport(ctx context.Context) mcptransport.Transport {
	transport, err := mcpserver.NewADKTransportBuilder().
		WithInMemoryTransport().
		BuildTransport(ctx)
	if err != nil {
		log.Fatalf("Failed to build MCP transport: %v", err)
	}

	return transport
}

// Example Output:
//
//	2026/01/14 10:02:11 Verifying MCP transport and tools...
//	2026/01/14 10:02:11 Available Tools (2):
//	2026/01/14 10:02:11 - get_component_info: Get detailed information about a specific component
//	2026/01/14 10:02:11 - search_components: Search for components by name or category
//	2026/01/14 10:02:11 Available Resources (16):
//	2026/01/14 10:02:11 - planks://components/list: Component List
//	2026/01/14 10:02:11 - planks://config/tailwind: Tailwind Configuration
//	...
//	2026/01/14 10:02:11 Transport verification successful.
//	2026/01/14 10:02:11 Running agent with prompt: "Which form components are available, and how do I import the button?"
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable must be set")
	}

	// 1. Verify the transport with the official SDK client
	log.Println("Verifying MCP transport and tools...")
	verifyTransport(ctx)

	// 2. Initialize the ADK toolset with a fresh transport
	log.Println("Initializing ADK toolset...")
	mcpToolSet, err := mcptoolset.New(mcptoolset.Config{
		Transport: localMCPTransport(ctx),
	})
	if err != nil {
		log.Fatalf("Failed to create MCP tool set: %v", err)
	}

	// 3. Create Gemini model
	model, err := gemini.NewModel(ctx, "gemini-2.5-flash", &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Fatalf("Failed to create model: %v", err)
	}

	// 4. Create Agent
	a, err := llmagent.New(llmagent.Config{
		Name:        "planks_agent",
		Model:       model,
		Description: "Agent that answers questions about the planks UI component library.",
		Instruction: "You help developers use the @sailflow/planks React components. " +
			"Search the catalog before answering, quote the import lines returned by the tools, " +
			"and never invent props or variants that the catalog does not report.",
		Toolsets: []tool.Toolset{mcpToolSet},
	})
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	// 5. Create Session Service and Runner
	sessionSvc := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        "planks-adk-example",
		Agent:          a,
		SessionService: sessionSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	sessResp, err := sessionSvc.Create(ctx, &session.CreateRequest{
		AppName: "planks-adk-example",
		UserID:  "test-user",
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	sessionID := sessResp.Session.ID()
	log.Printf("Created session: %s", sessionID)

	// 6. Run a query
	prompt := "Which form components are available, and how do I import the button?"
	log.Printf("Running agent with prompt: %q", prompt)

	userMsg := genai.NewContentFromText(prompt, "user")
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeSSE,
	}

	log.Println("--- Agent Response ---")
	for event, err := range r.Run(ctx, "test-user", sessionID, userMsg, runConfig) {
		if err != nil {
			log.Printf("\nAgent error: %v", err)
			break
		}

		if event.LLMResponse.Partial && event.LLMResponse.Content != nil {
			for _, part := range event.LLMResponse.Content.Parts {
				fmt.Print(part.Text)
			}
		}
	}
	fmt.Println("\n----------------------")
	log.Println("Agent execution completed")
}

func verifyTransport(ctx context.Context) {
	client := mcptransport.NewClient(&mcptransport.Implementation{
		Name:    "verifier",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, localMCPTransport(ctx), nil)
	if err != nil {
		log.Fatalf("Verification failed: connect: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcptransport.ListToolsParams{})
	if err != nil {
		log.Fatalf("Verification failed: list tools: %v", err)
	}
	log.Printf("Available Tools (%d):", len(tools.Tools))
	for _, tool := range tools.Tools {
		log.Printf("- %s: %s", tool.Name, tool.Description)
	}

	resources, err := session.ListResources(ctx, &mcptransport.ListResourcesParams{})
	if err != nil {
		log.Fatalf("Verification failed: list resources: %v", err)
	}
	log.Printf("Available Resources (%d):", len(resources.Resources))
	for _, res := range resources.Resources {
		log.Printf("- %s: %s", res.URI, res.Name)
	}
	log.Println("Transport verification successful.")
}
