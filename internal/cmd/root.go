// Package cmd — командная поверхность утилиты: флаги, их привязка к
// окружению через viper и передача настроек в app.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"treegen/internal/app"
)

// Версию можно переопределить через -ldflags "-X treegen/internal/cmd.version=1.0.0"
var version = "0.1.0"

// NewRootCmd собирает корневую команду со всеми флагами.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treegen",
		Short: "Генератор структуры проекта из текстового дерева",
		Long: `treegen создаёт каталоги и файлы по текстовому описанию дерева
(псевдографика ├──/└── либо отступы табами). Известные имена файлов
заполняются заготовками.

Обычный цикл: treegen --init → (редактируете template.txt) → treegen → готово.
Каждый флаг можно задать и переменной окружения с префиксом TREEGEN_
(например TREEGEN_TEMPLATE, TREEGEN_FORCE).`,
		Version:      version,
		SilenceUsage: true,
		RunE:         run,
	}

	fl := cmd.Flags()
	fl.BoolP("init", "i", false, "создать базовый шаблон (если его нет)")
	fl.BoolP("force", "f", false, "перезаписывать существующие файлы и шаблон (при --init)")
	fl.StringP("template", "t", "template.txt", "путь к файлу шаблона")
	fl.StringP("out", "o", ".", "каталог, куда создавать проект (родитель корня)")
	fl.Bool("dry-run", false, "показать, что будет создано, без реальных изменений на диске")
	fl.BoolP("explain", "x", false, "объяснять, почему строки шаблона игнорируются")
	fl.String("dperm", "0755", "права для каталогов (восьмерично, например 0755)")
	fl.String("fperm", "0644", "права для файлов (восьмерично, например 0644)")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix("TREEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if v.GetBool("explain") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	dperm, err := parsePerm(v.GetString("dperm"), 0o755)
	if err != nil {
		return fmt.Errorf("неверные права --dperm: %w", err)
	}
	fperm, err := parsePerm(v.GetString("fperm"), 0o644)
	if err != nil {
		return fmt.Errorf("неверные права --fperm: %w", err)
	}

	return app.Run(app.Options{
		TemplatePath: v.GetString("template"),
		OutDir:       v.GetString("out"),
		Init:         v.GetBool("init"),
		Force:        v.GetBool("force"),
		DryRun:       v.GetBool("dry-run"),
		DirPerm:      dperm,
		FilePerm:     fperm,
		Out:          cmd.OutOrStdout(),
	})
}

// parsePerm разбирает восьмеричные права; base=0 понимает 0755/755/0o755.
func parsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}

// Execute запускает корневую команду.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
