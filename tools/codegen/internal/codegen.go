// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/template"
)

// Config holds the loaded configuration
type Config struct {
	Resources []ResourceDefinition `json:"resources"`
	Templates []TemplateDefinition `json:"templates"`
	Tools     []ToolDefinition     `json:"tools"`
}

// ResourceDefinition represents a fixed resource to be generated
type ResourceDefinition struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
	Handler     string `json:"handler"`
}

// TemplateDefinition represents a resource URI template to be generated
type TemplateDefinition struct {
	URITemplate string `json:"uriTemplate"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
	Handler     string `json:"handler"`
}

// ToolDefinition represents a tool to be generated
type ToolDefinition struct {
	ConstName   string      `json:"constName"`
	Name        string      `json:"name"`
	Comment     string      `json:"comment"`
	Description string      `json:"description"`
	Handler     string      `json:"handler"`
	RoleConst   string      `json:"roleConst"`
	RoleName    string      `json:"roleName"`
	RoleComment string      `json:"roleComment"`
	Params      []ToolParam `json:"params"`
}

// ToolParam represents a parameter for a tool
type ToolParam struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"` // string, number, boolean
	Required    bool   `json:"required"`
}

// Option returns the mcp-go option constructor for the parameter type.
func (p ToolParam) Option() string {
	switch p.Type {
	case "number":
		return "mcp.WithNumber"
	case "boolean":
		return "mcp.WithBoolean"
	default:
		return "mcp.WithString"
	}
}

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getTemplatePath returns the path to a template file
func getTemplatePath(templateName string) string {
	return filepath.Join(getCodegenDir(), "templates", templateName)
}

// getOutputPath returns the path to an output file
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", "src", "mcp-server", outputName)
}

// loadJSON decodes the JSON file at path into v.
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// loadConfig loads the configuration from the JSON files in dir
func loadConfig(dir string) (*Config, error) {
	config := &Config{}

	var resources struct {
		Resources []ResourceDefinition `json:"resources"`
		Templates []TemplateDefinition `json:"templates"`
	}
	if err := loadJSON(filepath.Join(dir, "resources.json"), &resources); err != nil {
		return nil, fmt.Errorf("loading resources config: %w", err)
	}
	config.Resources = resources.Resources
	config.Templates = resources.Templates

	var tools struct {
		Tools []ToolDefinition `json:"tools"`
	}
	if err := loadJSON(filepath.Join(dir, "tools.json"), &tools); err != nil {
		return nil, fmt.Errorf("loading tools config: %w", err)
	}
	config.Tools = tools.Tools

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	if err := validateResources(config.Resources); err != nil {
		return err
	}
	if err := validateTemplates(config.Templates); err != nil {
		return err
	}
	return validateTools(config.Tools)
}

// validateResources validates resource definitions
func validateResources(resources []ResourceDefinition) error {
	resourceURIs := make(map[string]bool)
	for i, res := range resources {
		if res.URI == "" {
			return fmt.Errorf("resource %d: URI is required", i)
		}
		if res.Name == "" {
			return fmt.Errorf("resource %d: Name is required", i)
		}
		if res.Handler == "" {
			return fmt.Errorf("resource %d: Handler is required", i)
		}
		if strings.ContainsAny(res.URI, "{}") {
			return fmt.Errorf("resource %d: URI '%s' is a template, declare it under templates", i, res.URI)
		}
		if resourceURIs[res.URI] {
			return fmt.Errorf("resource %d: duplicate URI '%s'", i, res.URI)
		}
		resourceURIs[res.URI] = true
	}
	return nil
}

// validateTemplates validates resource template definitions
func validateTemplates(tmpls []TemplateDefinition) error {
	seen := make(map[string]bool)
	for i, tmpl := range tmpls {
		if tmpl.URITemplate == "" {
			return fmt.Errorf("template %d: URITemplate is required", i)
		}
		if tmpl.Name == "" {
			return fmt.Errorf("template %d: Name is required", i)
		}
		if tmpl.Handler == "" {
			return fmt.Errorf("template %d: Handler is required", i)
		}
		if !strings.Contains(tmpl.URITemplate, "{") {
			return fmt.Errorf("template %d: URITemplate '%s' has no variable", i, tmpl.URITemplate)
		}
		if seen[tmpl.URITemplate] {
			return fmt.Errorf("template %d: duplicate URITemplate '%s'", i, tmpl.URITemplate)
		}
		seen[tmpl.URITemplate] = true
	}
	return nil
}

// validateTools validates tool definitions
func validateTools(tools []ToolDefinition) error {
	toolNames := make(map[string]bool)
	roleNames := make(map[string]bool)
	for i, tool := range tools {
		if err := validateTool(&tool, i, toolNames, roleNames); err != nil {
			return err
		}
	}
	return nil
}

// validateTool validates a single tool definition
func validateTool(tool *ToolDefinition, index int, toolNames, roleNames map[string]bool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool %d: Name is required", index)
	}
	if tool.ConstName == "" {
		return fmt.Errorf("tool %d: ConstName is required", index)
	}
	if tool.Handler == "" {
		return fmt.Errorf("tool %d: Handler is required", index)
	}
	if tool.RoleConst == "" {
		return fmt.Errorf("tool %d: RoleConst is required", index)
	}
	if toolNames[tool.Name] {
		return fmt.Errorf("tool %d: duplicate name '%s'", index, tool.Name)
	}
	if roleNames[tool.RoleName] {
		return fmt.Errorf("tool %d: duplicate role name '%s'", index, tool.RoleName)
	}
	toolNames[tool.Name] = true
	roleNames[tool.RoleName] = true

	return validateToolParams(tool.Params, index)
}

// validateToolParams validates tool parameters
func validateToolParams(params []ToolParam, toolIndex int) error {
	paramNames := make(map[string]bool)
	for j, param := range params {
		if param.Name == "" {
			return fmt.Errorf("tool %d param %d: Name is required", toolIndex, j)
		}
		if param.Type == "" {
			return fmt.Errorf("tool %d param %d: Type is required", toolIndex, j)
		}
		if param.Type != "string" && param.Type != "number" && param.Type != "boolean" {
			return fmt.Errorf("tool %d param %d: invalid type '%s', must be string, number, or boolean", toolIndex, j, param.Type)
		}
		if paramNames[param.Name] {
			return fmt.Errorf("tool %d param %d: duplicate parameter name '%s'", toolIndex, j, param.Name)
		}
		paramNames[param.Name] = true
	}
	return nil
}

// GenerateResources generates the resources.go file for the MCP server
func GenerateResources() error {
	return generate("resources.go.tmpl", "resources.go")
}

// GenerateTools generates the tools.go file for the MCP server
func GenerateTools() error {
	return generate("tools.go.tmpl", "tools.go")
}

func generate(templateName, outputName string) error {
	config, err := loadConfig(filepath.Join(getCodegenDir(), "config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	code, err := render(getTemplatePath(templateName), config)
	if err != nil {
		return err
	}
	return writeGeneratedFile(getOutputPath(outputName), code)
}

// render executes a template after the generated-file header and returns the
// gofmt-formatted source.
func render(templatePath string, config *Config) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parsing template from %s: %w", templatePath, err)
	}

	var code bytes.Buffer
	writeHeader(&code)

	code.WriteString("package mcpserver\n\n")
	code.WriteString("import (\n")
	code.WriteString("\t\"github.com/mark3labs/mcp-go/mcp\"\n")
	code.WriteString(")\n\n")

	if err := tmpl.Execute(&code, config); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(code.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2025 H0llyW00dzZ All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// By accessing or using this software, you agree to be bound by the terms\n")
	code.WriteString("// of the License Agreement, which you can find at LICENSE files.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
