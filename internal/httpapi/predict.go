package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/features"
	"github.com/lgtm-migrator/mecj-demo/internal/query"
	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

const msgNotReady = "Classifier not ready"

// extractFunc turns a parsed query into the single row fed to a model.
type extractFunc func(q query.Map) ([]float64, error)

func tabularRow(q query.Map) ([]float64, error) {
	return features.ExtractTabular(q)
}

func sequenceRow(q query.Map) ([]float64, error) {
	seq, err := features.ExtractSequence(q)
	if err != nil {
		return nil, err
	}
	return classifier.EncodeSequence(seq), nil
}

// predictTabular serves the 8-feature model.
//
// @Summary      Predict from tabular features
// @Tags         predict
// @Produce      json
// @Param        preg  query  number  true  "pregnancies"
// @Param        plas  query  number  true  "plasma glucose"
// @Param        pres  query  number  true  "blood pressure"
// @Param        skin  query  number  true  "skin fold thickness"
// @Param        insu  query  number  true  "serum insulin"
// @Param        mass  query  number  true  "body mass index"
// @Param        pedi  query  number  true  "pedigree function"
// @Param        age   query  number  true  "age"
// @Success      200  {object}  types.PredictionResponse
// @Failure      400  {string}  string  "missing or invalid parameter"
// @Failure      500  {string}  string  "Classifier not ready"
// @Router       /predict [get]
func predictTabular(svc Service) http.HandlerFunc {
	return predictHandler(svc, types.SlotTabular, tabularRow)
}

// predictSequence serves the sequence model.
//
// @Summary      Predict from a protein sequence
// @Tags         predict
// @Produce      json
// @Param        seq  query  string  true  "amino-acid sequence"
// @Success      200  {object}  types.PredictionResponse
// @Failure      400  {string}  string  "missing parameter"
// @Failure      500  {string}  string  "Classifier not ready"
// @Router       /predict-ps [get]
func predictSequence(svc Service) http.HandlerFunc {
	return predictHandler(svc, types.SlotSequence, sequenceRow)
}

// predictHandler checks readiness first, then extracts, then predicts.
// The raw query is used as-is; values are not URL-decoded.
func predictHandler(svc Service, slot types.Slot, extract extractFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model, err := svc.TryGet(slot)
		if err != nil {
			observePrediction(slot, outcomeNotReady)
			writeText(w, statusFor(err, http.StatusInternalServerError), msgNotReady)
			return
		}
		row, err := extract(query.Parse(r.URL.RawQuery))
		if err != nil {
			observePrediction(slot, outcomeBadRequest)
			writeText(w, statusFor(err, http.StatusBadRequest), err.Error())
			return
		}
		labels, err := model.Predict([][]float64{row})
		if err == nil && len(labels) == 0 {
			err = classifier.ErrEmptyBatch
		}
		if err != nil {
			observePrediction(slot, outcomeError)
			logger().Error().Err(err).Str("model", string(slot)).Msg("prediction failed")
			writeText(w, http.StatusInternalServerError, "prediction failed")
			return
		}
		observePrediction(slot, outcomeOK)
		writeJSON(w, http.StatusOK, types.PredictionResponse{Result: labels[0]})
	}
}

func logger() *zerolog.Logger {
	if zlog != nil {
		return zlog
	}
	nop := zerolog.Nop()
	return &nop
}
