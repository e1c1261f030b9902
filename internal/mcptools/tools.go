// Package mcptools exposes the CV chat operations as MCP tools, the
// surface assistants use to load a résumé, ask about it, and send the
// answer by email.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/NavindyaD/cv-chat/internal/mailer"
	"github.com/NavindyaD/cv-chat/internal/parser"
	"github.com/NavindyaD/cv-chat/internal/qa"
	"github.com/NavindyaD/cv-chat/internal/session"
)

// Tools bundles the dependencies the MCP handlers need.
type Tools struct {
	Sessions *session.Store
	Sender   mailer.Sender
	Stats    *qa.QueryStats

	// DefaultCVPath is loaded into the default session on the first
	// question if nothing was loaded explicitly.
	DefaultCVPath string
}

// Register adds the cv-chat tools to an MCP server.
func (t *Tools) Register(srv *mcp.Server) {
	t.registerLoadCV(srv)
	t.registerAskQuestion(srv)
	t.registerSendEmail(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// textResult wraps a message the way the tools report everything:
// collaborator failures included, as readable text rather than protocol
// errors.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func argsError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(fmt.Errorf("invalid arguments: %w", err))
	return &res
}

// --- load_cv ---

type loadCVReq struct {
	FilePath string `json:"filePath"`
}

func (t *Tools) registerLoadCV(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "load_cv",
		Description: "Load and parse a CV/resume file (PDF, DOCX, TXT, MD, or HTML).",
		InputSchema: inputSchema(map[string]any{
			"filePath": map[string]any{"type": "string", "description": "Path to the CV/resume file"},
		}, []string{"filePath"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r loadCVReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return argsError(err), nil
		}

		text, err := parser.ExtractFile(r.FilePath)
		if err != nil {
			return textResult(fmt.Sprintf("Error loading CV: %v", err)), nil
		}

		sess := t.Sessions.Put(session.DefaultID, filepath.Base(r.FilePath), text)
		return textResult(fmt.Sprintf(
			"CV loaded successfully from %s. Content length: %d characters.",
			r.FilePath, sess.ContentLen,
		)), nil
	})
}

// --- ask_cv_question ---

type askReq struct {
	Question string `json:"question"`
}

func (t *Tools) registerAskQuestion(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "ask_cv_question",
		Description: "Ask questions about your CV/resume content.",
		InputSchema: inputSchema(map[string]any{
			"question": map[string]any{"type": "string", "description": "The question to ask about your CV"},
		}, []string{"question"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r askReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return argsError(err), nil
		}

		sess, ok := t.Sessions.Get(session.DefaultID)
		if !ok && t.DefaultCVPath != "" {
			if text, err := parser.ExtractFile(t.DefaultCVPath); err == nil {
				sess = t.Sessions.Put(session.DefaultID, filepath.Base(t.DefaultCVPath), text)
				ok = true
			}
		}
		if !ok {
			return textResult("No CV content loaded. Please use the load_cv tool first to load your resume."), nil
		}

		start := time.Now()
		answer, intent := qa.Answer(sess.Document(), r.Question)
		if t.Stats != nil {
			t.Stats.Record(intent, time.Since(start))
		}
		return textResult(answer), nil
	})
}

// --- send_email ---

type sendEmailReq struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func (t *Tools) registerSendEmail(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "send_email",
		Description: "Send an email notification.",
		InputSchema: inputSchema(map[string]any{
			"recipient": map[string]any{"type": "string", "description": "Email address of the recipient"},
			"subject":   map[string]any{"type": "string", "description": "Email subject line"},
			"body":      map[string]any{"type": "string", "description": "Email body content"},
		}, []string{"recipient", "subject", "body"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r sendEmailReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return argsError(err), nil
		}

		messageID, err := t.Sender.Send(ctx, r.Recipient, r.Subject, r.Body)
		if err != nil {
			return textResult(fmt.Sprintf("Failed to send email: %v", err)), nil
		}
		return textResult(fmt.Sprintf(
			"Email sent successfully to %s!\nMessage ID: %s", r.Recipient, messageID,
		)), nil
	})
}
