package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bradykim7/cookbook/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "development",
		IsDevelopment:       true,
		LogLevel:            "error",
		ListTextColor:       "#7677E7",
		ListBackgroundColor: "#E4EBFA",
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(testConfig(), strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "All recipes") || !strings.Contains(out, " 13. Banana Bread") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestListByCategory(t *testing.T) {
	out, _, err := execute(t, "", "list", "--category", "dessert")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Dessert recipes") || !strings.Contains(out, "  4. Best Brownies Ever") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Granola") {
		t.Fatalf("breakfast recipe in dessert list:\n%s", out)
	}

	if _, stderr, err := execute(t, "", "list", "-c", "brunch"); err == nil || !strings.Contains(stderr, "unknown category") {
		t.Fatalf("expected unknown category error, got %v %q", err, stderr)
	}
}

func TestShowByNumberAndName(t *testing.T) {
	out, _, err := execute(t, "", "show", "12")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Granola Bowl") || !strings.Contains(out, "Add chocolate chips (optional)") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, _, err = execute(t, "", "show", "granola", "bowl", "--hide-optional")
	if err != nil {
		t.Fatalf("show by name: %v", err)
	}
	if strings.Contains(out, "Add chocolate chips") {
		t.Fatalf("optional step should be hidden:\n%s", out)
	}

	if _, _, err := execute(t, "", "show", "Pizza"); err == nil {
		t.Fatal("expected error for unknown recipe")
	}
}

func TestFavoritesOnlyInShell(t *testing.T) {
	if _, _, err := execute(t, "", "favorites"); err == nil {
		t.Fatal("favorites should not be a one-shot command")
	}
}

func TestShellSession(t *testing.T) {
	out, _, err := execute(t, "fav 2\nfavorites\nnew\ninfo name Toast\ninfo description Warm bread\ninfo author Sam\ningredient 2 none Slice\nstep Toast the bread\nsave\nlist\nQUIT\n", "shell")
	if err != nil {
		t.Fatalf("shell: %v", err)
	}
	if !strings.Contains(out, "Added to favorites: Beet and Apple Salad") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "  2. Beet and Apple Salad (Lunch) ★") {
		t.Fatalf("favorite not listed:\n%s", out)
	}
	if !strings.Contains(out, " 14. Toast (Breakfast)") {
		t.Fatalf("new recipe not listed:\n%s", out)
	}
}

func TestSeedHTMLFlag(t *testing.T) {
	page := `<div itemscope itemtype="https://schema.org/Recipe">
  <span itemprop="name">Toast</span>
  <span itemprop="description">Warm bread</span>
  <span itemprop="author">Sam</span>
  <meta itemprop="recipeCategory" content="Breakfast">
  <span itemprop="recipeIngredient">1 Slice of bread</span>
  <p itemprop="recipeInstructions">Toast the bread</p>
</div>`
	path := filepath.Join(t.TempDir(), "extra.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	out, _, err := execute(t, "", "list", "--seed-html", path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, " 14. Toast (Breakfast)") {
		t.Fatalf("seeded recipe missing:\n%s", out)
	}

	if _, _, err := execute(t, "", "list", "--seed-html", filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, _, err := execute(t, "", "list", "--log-level", "loud"); err == nil {
		t.Fatal("expected error for bad log level")
	}
}
