package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SourceUser marks commands loaded from a user command file.
const SourceUser = "user"

// LoadFile reads user-defined template commands from a JSON file. Invalid
// entries are logged and skipped; only an unreadable or malformed file is
// an error.
//
// File format:
//
//	{
//	  "commands": [
//	    {
//	      "id": "template.standup",
//	      "trigger": "/standup",
//	      "label": "Standup Notes",
//	      "description": "Scaffold for daily standup notes",
//	      "category": "template",
//	      "keywords": ["daily", "meeting"],
//	      "priority": 60,
//	      "nodeType": "templateNode",
//	      "data": {"sections": ["yesterday", "today", "blockers"]}
//	    }
//	  ]
//	}
func LoadFile(path string) ([]Command, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("command file %s: invalid JSON", path)
	}

	entries := gjson.GetBytes(raw, "commands")
	if !entries.IsArray() {
		return nil, fmt.Errorf("command file %s: missing commands array", path)
	}

	var cmds []Command
	entries.ForEach(func(_, entry gjson.Result) bool {
		cmd, err := parseEntry(entry)
		if err != nil {
			slog.Warn("skipping invalid user command",
				"path", path,
				"id", entry.Get("id").String(),
				"error", err,
			)
			return true
		}
		cmds = append(cmds, cmd)
		return true
	})

	return cmds, nil
}

// parseEntry builds a template command from one JSON entry.
func parseEntry(entry gjson.Result) (Command, error) {
	category := Category(entry.Get("category").String())
	if category == "" {
		category = CategoryTemplate
	}

	triggerType := TriggerSlash
	if s := entry.Get("triggerType").String(); s != "" {
		tt, ok := ParseTriggerType(s)
		if !ok {
			return Command{}, fmt.Errorf("unknown trigger type %q", s)
		}
		triggerType = tt
	}

	nodeType := entry.Get("nodeType").String()
	if nodeType == "" {
		nodeType = "templateNode"
	}

	data, err := templateData(entry)
	if err != nil {
		return Command{}, err
	}

	var keywords []string
	for _, kw := range entry.Get("keywords").Array() {
		keywords = append(keywords, kw.String())
	}

	cmd := Command{
		ID:          entry.Get("id").String(),
		Trigger:     entry.Get("trigger").String(),
		TriggerType: triggerType,
		Category:    category,
		Label:       entry.Get("label").String(),
		Description: entry.Get("description").String(),
		Keywords:    keywords,
		Priority:    int(entry.Get("priority").Int()),
		Source:      SourceUser,
		Action: Template{
			NodeType: nodeType,
			Data:     data,
		},
	}

	if err := cmd.Validate(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// templateData materializes the entry's data object, stamping provenance
// fields so the host can tell user templates from builtin ones.
func templateData(entry gjson.Result) (map[string]any, error) {
	raw := entry.Get("data").Raw
	if raw == "" {
		raw = "{}"
	}

	raw, err := sjson.Set(raw, "source", SourceUser)
	if err != nil {
		return nil, fmt.Errorf("stamp template data: %w", err)
	}
	raw, err = sjson.Set(raw, "template", entry.Get("id").String())
	if err != nil {
		return nil, fmt.Errorf("stamp template data: %w", err)
	}

	parsed, ok := gjson.Parse(raw).Value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("template data is not an object")
	}
	return parsed, nil
}

// LoadInto loads a command file and swaps the registry's user-sourced
// commands for the file contents. Returns the number registered.
func LoadInto(r *Registry, path string) (int, error) {
	cmds, err := LoadFile(path)
	if err != nil {
		return 0, err
	}

	r.UnregisterBySource(SourceUser)
	accepted := r.RegisterAll(cmds, RegisterOptions{Replace: true})
	slog.Info("loaded user commands",
		"path", path,
		"loaded", len(cmds),
		"accepted", accepted,
	)
	return accepted, nil
}
