package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treegen/internal/app"
	"treegen/internal/fsops"
)

func options(dir string) app.Options {
	return app.Options{
		TemplatePath: filepath.Join(dir, "template.txt"),
		OutDir:       dir,
		DirPerm:      0o755,
		FilePerm:     0o644,
	}
}

func run(t *testing.T, o app.Options) string {
	t.Helper()

	var buf bytes.Buffer
	o.Out = &buf
	require.NoError(t, app.Run(o))

	return buf.String()
}

func writeTemplate(t *testing.T, o app.Options, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(o.TemplatePath, []byte(content), 0o644))
}

func TestInitWritesDefaultTemplate(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	o.Init = true

	out := run(t, o)

	assert.Contains(t, out, "создан")
	content, err := os.ReadFile(o.TemplatePath)
	require.NoError(t, err)
	assert.Equal(t, app.DefaultTemplate, string(content))
}

func TestInitRefusesToClobberWithoutForce(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "custom/\n")

	o.Init = true
	out := run(t, o)

	assert.Contains(t, out, "уже существует")
	content, err := os.ReadFile(o.TemplatePath)
	require.NoError(t, err)
	assert.Equal(t, "custom/\n", string(content))
}

func TestInitForceOverwrites(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "custom/\n")

	o.Init = true
	o.Force = true
	run(t, o)

	content, err := os.ReadFile(o.TemplatePath)
	require.NoError(t, err)
	assert.Equal(t, app.DefaultTemplate, string(content))
}

func TestMissingTemplateIsFatal(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())

	err := app.Run(o)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "не найден")
	assert.Contains(t, err.Error(), "--init")
}

func TestValidationErrorsPrintedAndNothingCreated(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "myproject/\n\tnotes.txt\n\t\tchild.txt\n")

	out := run(t, o)

	assert.Contains(t, out, "Ошибки в шаблоне")
	assert.Contains(t, out, "file cannot have children → notes.txt")
	assert.NoDirExists(t, filepath.Join(o.OutDir, "myproject"))
}

func TestNoRootReportedOnce(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "# только комментарии\n\n")

	out := run(t, o)

	assert.Contains(t, out,
		"template must contain at least one root directory")
	assert.NoDirExists(t, filepath.Join(o.OutDir, "myproject"))
}

func TestDryRunTouchesNothing(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "myproject/\n\tsrc/\n\t\tmain.py\n\tREADME.md\n")

	o.DryRun = true
	out := run(t, o)

	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "└── README.md")
	// Список файлов, которые получат заготовки.
	assert.Contains(t, out, "  - main.py")
	assert.Contains(t, out, "  - README.md")
	assert.NoDirExists(t, filepath.Join(o.OutDir, "myproject"))
}

func TestRunCreatesStructure(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "myproject/\n\tsrc/\n\t\tmain.py\n\tREADME.md\n")

	out := run(t, o)

	assert.Contains(t, out, "Создано каталогов: 2")
	assert.Contains(t, out, "Создано файлов: 2")
	assert.Contains(t, out, "успешно создана")

	mainPy, err := os.ReadFile(filepath.Join(o.OutDir, "myproject", "src", "main.py"))
	require.NoError(t, err)
	assert.Contains(t, string(mainPy), "Hello from main")

	readme, err := os.ReadFile(filepath.Join(o.OutDir, "myproject", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# myproject")
}

func TestRerunWithoutForceSkips(t *testing.T) {
	t.Parallel()

	o := options(t.TempDir())
	writeTemplate(t, o, "myproject/\n\tsrc/\n\t\tmain.py\n\tREADME.md\n")

	run(t, o)
	out := run(t, o)

	assert.Contains(t, out, "Пропущено файлов: 2")
}

func TestDefaultTemplateMaterializesUnderWrapper(t *testing.T) {
	t.Parallel()

	// Базовый шаблон в нотации tree даёт несколько корней уровня 0,
	// поэтому всё уходит под каталог-обёртку.
	o := options(t.TempDir())
	o.Init = true
	run(t, o)

	o.Init = false
	out := run(t, o)

	assert.Contains(t, out, "успешно создана")
	assert.DirExists(t, filepath.Join(o.OutDir, fsops.WrapperDir, "myproject"))
	assert.DirExists(t, filepath.Join(o.OutDir, fsops.WrapperDir, "src"))
	assert.FileExists(t, filepath.Join(o.OutDir, fsops.WrapperDir, "src", "main.py"))
	assert.FileExists(t, filepath.Join(o.OutDir, fsops.WrapperDir, "README.md"))
}
