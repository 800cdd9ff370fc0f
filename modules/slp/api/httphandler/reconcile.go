package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type reconcileRequest struct {
	Families []string `json:"families"`
}

func (r *reconcileRequest) Validate() ([]slp.Family, error) {
	if len(r.Families) == 0 {
		return slp.Families, nil
	}
	var errList []error
	families := make([]slp.Family, 0, len(r.Families))
	for _, name := range r.Families {
		family, err := slp.ParseFamily(name)
		if err != nil {
			errList = append(errList, errors.Errorf("family '%s' is not valid, expected fungible or nft", name))
			continue
		}
		families = append(families, family)
	}
	if err := errs.WithPublicMessage(errors.Join(errList...), "validation error"); err != nil {
		return nil, err
	}
	return lo.Uniq(families), nil
}

type invalidTx struct {
	TxHash string `json:"txHash"`
	Error  string `json:"error"`
}

type passReport struct {
	Skipped           bool        `json:"skipped"`
	Outputs           int         `json:"outputs"`
	Classified        int         `json:"classified"`
	NewVerifiedTxs    int         `json:"newVerifiedTxs"`
	NewDescriptors    int         `json:"newDescriptors"`
	OracleFailures    int         `json:"oracleFailures"`
	DirectoryFailures int         `json:"directoryFailures"`
	PersistFailures   int         `json:"persistFailures"`
	Invalid           []invalidTx `json:"invalid"`
	DurationMs        int64       `json:"durationMs"`
}

type familyReport struct {
	Family    string       `json:"family"`
	Converged bool         `json:"converged"`
	Passes    []passReport `json:"passes"`
}

type reconcileResult struct {
	List []familyReport `json:"list"`
}

type reconcileResponse = HttpResponse[reconcileResult]

// Reconcile runs the requested families until they converge and reports every pass.
func (h *HttpHandler) Reconcile(ctx *fiber.Ctx) error {
	var req reconcileRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errs.NewPublicError("request body must be a json object")
		}
	}
	families, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	results, err := h.usecase.Reconcile(ctx.UserContext(), families)
	if err != nil {
		return errors.Wrap(err, "error during Reconcile")
	}

	resp := reconcileResponse{
		Result: &reconcileResult{
			List: lo.Map(results, func(result *usecase.ReconcileResult, _ int) familyReport {
				converged := false
				if len(result.Reports) > 0 {
					converged = result.Reports[len(result.Reports)-1].Converged()
				}
				return familyReport{
					Family:    result.Family.String(),
					Converged: converged,
					Passes:    lo.Map(result.Reports, mapReport),
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func mapReport(report *slp.Report, _ int) passReport {
	return passReport{
		Skipped:           report.Skipped,
		Outputs:           report.Outputs,
		Classified:        report.Classified,
		NewVerifiedTxs:    report.NewVerifiedTxs,
		NewDescriptors:    report.NewDescriptors,
		OracleFailures:    report.OracleFailures,
		DirectoryFailures: report.DirectoryFailures,
		PersistFailures:   report.PersistFailures,
		Invalid: lo.Map(report.Invalid, func(tx slp.InvalidTx, _ int) invalidTx {
			return invalidTx{TxHash: tx.TxHash.String(), Error: tx.Err.Error()}
		}),
		DurationMs: report.Duration.Milliseconds(),
	}
}
