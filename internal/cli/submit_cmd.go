package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/wardrisk/internal/cli/formatter"
	"github.com/alexanderramin/wardrisk/internal/contract"
	"github.com/alexanderramin/wardrisk/internal/domain"
	"github.com/alexanderramin/wardrisk/internal/geo"
)

func newSubmitCmd(app *App) *cobra.Command {
	var lng, lat float64

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Run the interactive hazard survey and submit the responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("submit needs an interactive terminal")
			}

			if app.Config.Passphrase != "" {
				if err := passphraseForm(app.Config.Passphrase).Run(); err != nil {
					return wizardErr(err)
				}
			}

			hazards, err := app.Hazards()
			if err != nil {
				return fmt.Errorf("loading hazard list: %w", err)
			}
			layer, err := app.Layer()
			if err != nil {
				return fmt.Errorf("loading ward layer: %w", err)
			}

			session := &domain.Session{ShowForm: true}
			if err := chooseWard(cmd, layer, session, lng, lat); err != nil {
				return err
			}

			req, err := collectSurvey(session, hazards)
			if err != nil {
				return err
			}
			if req == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Submission cancelled."))
				return nil
			}

			spin := formatter.NewSpinner("Exporting responses and sending mail...")
			spin.Start()
			result, err := app.Submissions.Submit(context.Background(), *req)
			spin.Stop()
			if err != nil {
				return submitErr(err)
			}

			session.CompleteSubmission()
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude of a map click to resolve the ward from")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of a map click to resolve the ward from")

	return cmd
}

// chooseWard resolves the ward for the session: a coordinate click when the
// flags were given, a list pick otherwise, manual entry as the last resort.
func chooseWard(cmd *cobra.Command, layer *geo.Layer, session *domain.Session, lng, lat float64) error {
	resolver := geo.NewResolver(layer)
	out := cmd.OutOrStdout()

	var ev domain.MapEvent = domain.NoEvent{}
	if cmd.Flags().Changed("lng") && cmd.Flags().Changed("lat") {
		ev = domain.RawClick{Lng: lng, Lat: lat}
	}

	if id, ok := resolver.Resolve(ev); ok {
		session.SelectWard(id, true)
		fmt.Fprintln(out, formatter.Success("Selected ward: "+id))
		return nil
	}
	if _, isClick := ev.(domain.RawClick); isClick {
		// A miss is not an error; fall through to the list and manual entry.
		fmt.Fprintln(out, formatter.Dim("No ward contains that point."))
	}

	var picked string
	if err := wardSelectForm(layer.WardIDs(), &picked).Run(); err != nil {
		return wizardErr(err)
	}
	if picked != manualWardOption {
		// A list pick behaves like clicking the highlighted shape: the
		// identifier comes from the feature's properties.
		if id, ok := resolver.Resolve(domain.DrawnFeature{Properties: map[string]any{layer.IDKey(): picked}}); ok {
			session.SelectWard(id, true)
			return nil
		}
	}

	var manual string
	if err := manualWardForm(&manual).Run(); err != nil {
		return wizardErr(err)
	}
	session.SelectWard(strings.TrimSpace(manual), false)
	return nil
}

// collectSurvey walks the respondent through the remaining forms. A nil
// request with nil error means the user cancelled at the confirmation step.
func collectSurvey(session *domain.Session, hazards []string) (*contract.SubmitRequest, error) {
	var name, email string
	if err := respondentForm(&name, &email).Run(); err != nil {
		return nil, wizardErr(err)
	}

	var selected []string
	var custom string
	for {
		if err := hazardForm(hazards, &selected, &custom).Run(); err != nil {
			return nil, wizardErr(err)
		}
		if len(selected) > 0 || strings.TrimSpace(custom) != "" {
			break
		}
	}

	hazardList := append([]string{}, selected...)
	if c := strings.TrimSpace(custom); c != "" {
		hazardList = append(hazardList, c)
	}

	store := make(map[domain.AnswerKey]*string)
	if err := questionForm(hazardList, store).Run(); err != nil {
		return nil, wizardErr(err)
	}

	var confirmed bool
	if err := confirmForm(session.Ward, name, len(hazardList), &confirmed).Run(); err != nil {
		return nil, wizardErr(err)
	}
	if !confirmed {
		return nil, nil
	}

	answers := make(domain.AnswerSet, len(store))
	for key, value := range store {
		answers[key] = *value
	}

	return &contract.SubmitRequest{
		RespondentName: name,
		Ward:           session.Ward,
		Email:          email,
		Hazards:        selected,
		CustomHazard:   custom,
		Answers:        answers,
	}, nil
}

func printResult(cmd *cobra.Command, result *contract.SubmitResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, formatter.Success(fmt.Sprintf(
		"Submission complete: %d responses across %d hazards", result.RecordCount, result.HazardCount)))
	fmt.Fprintln(out, formatter.Dim("Files written to "+filepath.Dir(result.Bundle.CSVPath)))

	if result.RespondentMailed {
		fmt.Fprintln(out, formatter.Success("Your copy has been emailed."))
	}
	if result.AdminMailed {
		fmt.Fprintln(out, formatter.Success("Administrators have been notified."))
	}
	for _, warning := range result.DeliveryWarnings {
		fmt.Fprintln(out, formatter.Warn(warning+" (files are kept on disk)"))
	}
}

// submitErr maps pipeline failures to messages naming the failed step.
func submitErr(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("submission blocked by validation: %w", err)
	}
	var xerr *domain.ExportError
	if errors.As(err, &xerr) {
		return fmt.Errorf("saving the survey files failed, nothing was emailed: %w", err)
	}
	return err
}

func wizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("survey aborted")
	}
	return err
}
