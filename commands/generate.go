package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/nonGratis/asset-acts/acts"
	"github.com/nonGratis/asset-acts/report"
	"github.com/nonGratis/asset-acts/sheet"
)

var GenerateCmd = Generate{
	command: command{
		credentials: "",
		env:         "",
		debug:       false,
	},

	assets:      "",
	departments: "",
	folder:      "",
	template:    "",
	dir:         "",
	noupload:    false,
}

// Generate is the CLI command implementation for the act generation
// pipeline: fetch both registers, build one act per asset/owner, render the
// template and write/upload the documents.
type Generate struct {
	command
	assets      string
	departments string
	folder      string
	template    string
	dir         string
	noupload    bool
}

func (cmd *Generate) Name() string {
	return "generate"
}

func (cmd *Generate) Description() string {
	return "Generates transfer act documents from the assets and departments spreadsheets"
}

func (cmd *Generate) Usage() string {
	return "--credentials <file> --assets <ID> --departments <ID> --folder <ID>"
}

func (cmd *Generate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] generate [options]\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the assets and departments registers from Google Sheets and generates")
	fmt.Println("  one act document per asset row and owner, substituting {asset.*} and")
	fmt.Println("  {department.*} placeholders in the local DOCX template. Options default from")
	fmt.Println("  the environment (optionally seeded from a .env file).")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    asset-acts generate`)
	fmt.Println(`    asset-acts --debug generate --credentials "credentials.json" \`)
	fmt.Println(`                                --assets "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --departments "1mHbMDU9Sa3Uh3yDr9eyOYdGUOpXDSCbuRq9YxSq2ipE" \`)
	fmt.Println(`                                --folder "0AIxmR1Yqz9DFUk9PVA" \`)
	fmt.Println(`                                --template "template.docx" --dir "docs"`)
	fmt.Println()
}

func (cmd *Generate) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("generate")

	flagset.StringVar(&cmd.assets, "assets", cmd.assets, "Assets spreadsheet ID or URL")
	flagset.StringVar(&cmd.departments, "departments", cmd.departments, "Departments spreadsheet ID or URL")
	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Shared drive folder ID for uploads")
	flagset.StringVar(&cmd.template, "template", cmd.template, "Path for the DOCX template")
	flagset.StringVar(&cmd.dir, "dir", cmd.dir, "Directory for the generated documents")
	flagset.BoolVar(&cmd.noupload, "no-upload", cmd.noupload, "Skips the shared drive upload")

	return flagset
}

func (cmd *Generate) Execute(args ...interface{}) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf := cmd.configure()
	if err := conf.Validate(); err != nil {
		return err
	}

	return cmd.exec(context.Background(), conf)
}

// configure resolves the run configuration: environment first, command flags
// override.
func (cmd *Generate) configure() Config {
	conf := LoadConfig(cmd.env)

	if cmd.credentials != "" {
		conf.Credentials = cmd.credentials
	}

	if cmd.assets != "" {
		conf.AssetsID = spreadsheetID(cmd.assets)
	}

	if cmd.departments != "" {
		conf.DepartmentsID = spreadsheetID(cmd.departments)
	}

	if cmd.folder != "" {
		conf.Folder = cmd.folder
	}

	if cmd.template != "" {
		conf.Template = cmd.template
	}

	if cmd.dir != "" {
		conf.OutputDir = cmd.dir
	}

	if cmd.noupload {
		conf.Upload = false
	}

	conf.AssetsID = spreadsheetID(conf.AssetsID)
	conf.DepartmentsID = spreadsheetID(conf.DepartmentsID)

	return conf
}

func (cmd *Generate) exec(ctx context.Context, conf Config) error {
	log := zap.S().With("run", uuid.New().String())

	template, err := report.LoadTemplate(conf.Template)
	if err != nil {
		return err
	}

	google, err := newServices(ctx, conf.Credentials)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	if err := verifySpreadsheet(ctx, google.drive, conf.AssetsID, "assets spreadsheet", log); err != nil {
		return err
	}

	if err := verifySpreadsheet(ctx, google.drive, conf.DepartmentsID, "departments spreadsheet", log); err != nil {
		return err
	}

	registry, err := sheet.Fetch(ctx, google.sheets, conf.DepartmentsID, conf.DepartmentsSheet)
	if err != nil {
		return err
	}

	departments := acts.LoadDepartments(registry, log)
	if len(departments) == 0 {
		log.Warnf("departments register is empty")
	}

	table, err := sheet.Fetch(ctx, google.sheets, conf.AssetsID, conf.AssetsSheet)
	if err != nil {
		return err
	}

	list, stats, _ := acts.ParseAssets(table, departments, log)
	if len(list) == 0 {
		log.Infow("no acts to generate",
			"rows_processed", stats.RowsProcessed,
			"rows_skipped", stats.RowsSkipped,
			"owners_skipped", stats.OwnersSkipped)
		return nil
	}

	// ... generate documents
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	var failed error
	generated := 0
	uploadsFailed := 0

loop:
	for _, act := range list {
		select {
		case <-interrupt:
			log.Warnf("interrupted - %d of %d acts generated", generated, len(list))
			break loop

		default:
		}

		name := report.FileName(act.Department.Code, act.Asset.ID)

		document, err := template.Render(name, acts.Mapping(act))
		if err != nil {
			failed = multierr.Append(failed, fmt.Errorf("asset %s: %w", act.Asset.ID, err))
			log.Errorw("render failed", "asset", act.Asset.ID, "error", err)
			continue
		}

		path, err := report.Save(conf.OutputDir, name, document)
		if err != nil {
			failed = multierr.Append(failed, fmt.Errorf("asset %s: %w", act.Asset.ID, err))
			log.Errorw("write failed", "asset", act.Asset.ID, "error", err)
			continue
		}

		generated++
		log.Infow("created act",
			"file", path,
			"asset", act.Asset.ID,
			"department", act.Department.Code,
			"sum", acts.FormatMoney(act.Sum))

		if conf.Upload {
			if id, err := report.Upload(ctx, google.drive, conf.Folder, name, document); err != nil {
				uploadsFailed++
				log.Warnw("upload failed", "asset", act.Asset.ID, "file", name, "error", err)
			} else {
				log.Infow("uploaded act", "file", name, "drive", id)
			}
		}
	}

	log.Infow("run complete",
		"rows_processed", stats.RowsProcessed,
		"rows_skipped", stats.RowsSkipped,
		"owners_skipped", stats.OwnersSkipped,
		"acts_generated", generated,
		"uploads_failed", uploadsFailed,
		"total_value", acts.FormatMoney(stats.TotalValue))

	if failed != nil {
		return fmt.Errorf("%d act(s) failed: %w", len(multierr.Errors(failed)), failed)
	}

	return nil
}

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// spreadsheetID accepts either a bare spreadsheet ID or a full spreadsheet
// URL and returns the ID.
func spreadsheetID(v string) string {
	if match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(v)); len(match) == 2 {
		return match[1]
	}

	return strings.TrimSpace(v)
}
