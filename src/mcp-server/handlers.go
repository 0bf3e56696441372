// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Library   string
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
	Resources []resourceInfo
	Templates []resourceInfo
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// resourceInfo represents a fixed resource or a URI template for template rendering.
type resourceInfo struct {
	URI         string
	MIMEType    string
	Description string
}

// loadInstructions renders the instructions template with the registered tools and
// resources and returns the text sent to MCP clients during initialization.
//
// Parameters:
//   - embed: Filesystem holding the instructions template
//   - library: Package name the components are imported from
//   - tools: Registered tool definitions
//   - resources: Fixed resources
//   - tmpls: Resource URI templates
//
// Returns:
//   - string: The rendered instruction text
//   - error: If the embedded file cannot be read or template parsing fails
func loadInstructions(embed templates.EmbedFS, library string, tools []ToolDefinition, resources []ResourceDefinition, tmpls []ResourceTemplateDefinition) (string, error) {
	templateBytes, err := embed.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Library:   library,
		ToolRoles: make(map[string]string, len(tools)),
	}

	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	for _, r := range resources {
		data.Resources = append(data.Resources, resourceInfo{
			URI:         r.Resource.URI,
			MIMEType:    r.Resource.MIMEType,
			Description: r.Resource.Description,
		})
	}

	for _, t := range tmpls {
		uri := ""
		if t.Template.URITemplate != nil {
			uri = t.Template.URITemplate.Raw()
		}
		data.Templates = append(data.Templates, resourceInfo{
			URI:         uri,
			MIMEType:    t.Template.MIMEType,
			Description: t.Template.Description,
		})
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}
