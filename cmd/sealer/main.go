package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/sealed-vitae/internal/crypto"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/sealer"
	"github.com/MKhiriev/sealed-vitae/internal/store"
	"github.com/MKhiriev/sealed-vitae/internal/unlock"
	"github.com/MKhiriev/sealed-vitae/internal/validators"
	"github.com/MKhiriev/sealed-vitae/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewCLILogger("sealed-vitae-sealer")
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	if err := logger.SetLevel(opts.logLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	engine := unlock.NewEngine(crypto.NewKeyChainService(), validators.NewRecordValidator(), log)
	sealed, err := run(ctx, opts, engine, log)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("sealing failed")
	}

	fmt.Printf("\nSuccess: bundle written with %d sealed record(s)\n", len(sealed))
	fmt.Println("No credentials are stored in the bundle")

	if opts.baseURL == "" {
		return
	}

	fmt.Println("\nShare these links (keep the credentials secret):")
	for _, s := range sealed {
		fmt.Printf("  %s\n", sealer.ShareLink(opts.baseURL, s.Credential))
	}
	fmt.Printf("\nPublic link: %s\n", opts.baseURL)

	if opts.copy && len(sealed) > 0 {
		if err := clipboard.WriteAll(sealer.ShareLink(opts.baseURL, sealed[0].Credential)); err != nil {
			log.Warn().Err(err).Msg("could not copy link to clipboard")
			return
		}
		fmt.Println("First link copied to clipboard")
	}
}

// run seals every manifest entry and saves the bundle. Storage is closed
// before it returns.
func run(ctx context.Context, opts options, engine sealer.Engine, log *logger.Logger) ([]sealer.Sealed, error) {
	entries, err := sealer.LoadManifest(opts.manifest)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	sealed, err := sealer.New(engine, filepath.Dir(opts.manifest), log).SealManifest(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("seal manifest: %w", err)
	}

	storages, err := store.NewStorages(ctx, opts.storage(), log)
	if err != nil {
		return nil, fmt.Errorf("open bundle storage: %w", err)
	}
	defer storages.Close()

	if err := storages.BundleStorage.SaveBundle(ctx, sealer.Payloads(sealed)); err != nil {
		return nil, fmt.Errorf("save bundle: %w", err)
	}

	return sealed, nil
}
