// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation handling, and file content.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSkillEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	for _, marker := range []string{"name: gains", "gains gain", "gains bodyfat", "gains options"} {
		if !strings.Contains(string(content), marker) {
			t.Errorf("SKILL.md missing %q", marker)
		}
	}
}

func TestInstallSkillConfirmed(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = false

	var out bytes.Buffer
	if err := installSkill(tmpHome, strings.NewReader("y\n"), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	written, err := os.ReadFile(skillPathFor(tmpHome))
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	embedded, _ := skillFS.ReadFile("skill/SKILL.md")
	if !bytes.Equal(written, embedded) {
		t.Error("installed skill differs from embedded content")
	}
	if !strings.Contains(out.String(), "Installed gains skill") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestInstallSkillDeclined(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = false

	var out bytes.Buffer
	if err := installSkill(tmpHome, strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	if _, err := os.Stat(skillPathFor(tmpHome)); !os.IsNotExist(err) {
		t.Error("skill file should not be written when declined")
	}
	if !strings.Contains(out.String(), "Installation canceled.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestInstallSkillSkipConfirmOverwrites(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	path := skillPathFor(tmpHome)
	var out bytes.Buffer
	if err := installSkill(tmpHome, strings.NewReader(""), &out); err != nil {
		t.Fatalf("first install failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := installSkill(tmpHome, strings.NewReader(""), &out); err != nil {
		t.Fatalf("second install failed: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("expected overwrite note:\n%s", out.String())
	}
	written, _ := os.ReadFile(path)
	if string(written) == "stale" {
		t.Error("skill file was not overwritten")
	}
}
