package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appdisputes "github.com/bryanwahyu/scamwatch/internal/application/disputes"
	appreports "github.com/bryanwahyu/scamwatch/internal/application/reports"
	"github.com/bryanwahyu/scamwatch/internal/domain/disputes"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
	"github.com/bryanwahyu/scamwatch/internal/middleware"
)

type reportRequest struct {
	PhoneNumber string  `json:"phoneNumber" validate:"required,phone"`
	Category    string  `json:"category" validate:"required,category"`
	Description string  `json:"description" validate:"required,min=10"`
	CallType    *string `json:"callType" validate:"omitempty,oneof=live robocall voicemail text"`
	Frequency   *string `json:"frequency" validate:"omitempty,oneof=once few-times daily multiple-daily"`
}

type disputeRequest struct {
	ScamReportID     string  `json:"scamReportId" validate:"required"`
	Description      string  `json:"description" validate:"required,min=10"`
	VerificationInfo *string `json:"verificationInfo"`
}

type verifyRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}

type reportBody struct {
	Report  *reports.ScamReport `json:"report"`
	Message string              `json:"message,omitempty"`
}

type reportsBody struct {
	Reports []*reports.ScamReport `json:"reports"`
}

type lookupBody struct {
	Found                bool                `json:"found"`
	Report               *reports.ScamReport `json:"report,omitempty"`
	FormattedPhoneNumber string              `json:"formattedPhoneNumber,omitempty"`
}

// GET /api/lookup/{phoneNumber}
func (r *Router) handleLookup(w http.ResponseWriter, req *http.Request) error {
	raw := chi.URLParam(req, "phoneNumber")
	r.metrics.IncLookups()

	rep, err := r.reportsSvc.Lookup(req.Context(), raw)
	if err != nil {
		return err
	}
	if rep == nil {
		writeJSON(w, http.StatusOK, lookupBody{Found: false})
		return nil
	}
	writeJSON(w, http.StatusOK, lookupBody{
		Found:                true,
		Report:               rep,
		FormattedPhoneNumber: reports.Format(rep.PhoneNumber),
	})
	return nil
}

// POST /api/reports
func (r *Router) handleCreateReport(w http.ResponseWriter, req *http.Request) error {
	var body reportRequest
	if err := decodeJSON(w, req, &body); err != nil {
		return badRequest(err)
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(err)
	}

	res, err := r.reportsSvc.Report(req.Context(), appreports.ReportCommand{
		PhoneNumber: body.PhoneNumber,
		Category:    reports.Category(body.Category),
		Description: body.Description,
		CallType:    enumPtr[reports.CallType](body.CallType),
		Frequency:   enumPtr[reports.Frequency](body.Frequency),
	})
	if errors.Is(err, reports.ErrInvalidPhoneNumber) {
		return badRequest(err)
	}
	if err != nil {
		return err
	}

	if res.Created {
		r.metrics.IncReportsCreated()
		writeJSON(w, http.StatusCreated, reportBody{Report: res.Report})
		return nil
	}
	r.metrics.IncReportsIncremented()
	writeJSON(w, http.StatusOK, reportBody{Report: res.Report, Message: "Report count updated"})
	return nil
}

// GET /api/reports/recent?limit=10
func (r *Router) handleRecent(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.reportsSvc.Recent(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, reportsBody{Reports: list})
	return nil
}

// GET /api/reports?search=&category=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()

	list, err := r.reportsSvc.Search(req.Context(), reports.Filter{
		Search:   q.Get("search"),
		Category: reports.Category(q.Get("category")),
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, reportsBody{Reports: list})
	return nil
}

// PATCH /api/reports/{id}/verify
func (r *Router) handleVerify(w http.ResponseWriter, req *http.Request) error {
	id := reports.ReportID(chi.URLParam(req, "id"))

	var body verifyRequest
	if err := decodeJSON(w, req, &body); err != nil {
		return badRequest(err)
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(err)
	}

	rep, err := r.reportsSvc.Verify(req.Context(), id, *body.IsVerified)
	if err != nil {
		return err
	}
	if rep == nil {
		return notFound("Report not found")
	}
	r.metrics.IncReportsVerified()
	writeJSON(w, http.StatusOK, reportBody{Report: rep})
	return nil
}

// GET /api/reports/{id}/disputes
func (r *Router) handleListDisputes(w http.ResponseWriter, req *http.Request) error {
	list, err := r.disputesSvc.ListByReport(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, struct {
		Disputes []*disputes.Dispute `json:"disputes"`
	}{list})
	return nil
}

// POST /api/disputes
func (r *Router) handleCreateDispute(w http.ResponseWriter, req *http.Request) error {
	var body disputeRequest
	if err := decodeJSON(w, req, &body); err != nil {
		return badRequest(err)
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(err)
	}

	d, err := r.disputesSvc.Create(req.Context(), appdisputes.CreateCommand{
		ScamReportID:     body.ScamReportID,
		Description:      body.Description,
		VerificationInfo: body.VerificationInfo,
	})
	if err != nil {
		return err
	}
	r.metrics.IncDisputesCreated()
	writeJSON(w, http.StatusCreated, struct {
		Dispute *disputes.Dispute `json:"dispute"`
	}{d})
	return nil
}

// GET /api/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	stats, err := r.reportsSvc.Stats(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
