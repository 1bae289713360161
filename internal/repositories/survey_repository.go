package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/util"
)

// SurveyRepository handles cargo surveys. CBM per line and the survey total
// are recalculated before every write.
type SurveyRepository struct {
	DB *sql.DB
}

func (r SurveyRepository) List(p domain.ListParams, customerID int64, status string) ([]models.Survey, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, `(sv.survey_no LIKE ? OR c.name LIKE ? OR sv.origin LIKE ? OR sv.destination LIKE ?
			OR EXISTS (SELECT 1 FROM survey_cargo_items ci WHERE ci.survey_id = sv.id AND ci.name LIKE ?))`)
		args = append(args, like, like, like, like, like)
	}
	if customerID > 0 {
		where = append(where, "sv.customer_id = ?")
		args = append(args, customerID)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "sv.status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM surveys sv
		LEFT JOIN customers c ON c.id = sv.customer_id
		WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			sv.id,
			COALESCE(sv.survey_no, ''),
			COALESCE(sv.customer_id, 0),
			COALESCE(c.name, ''),
			COALESCE(DATE_FORMAT(sv.survey_date, '%Y-%m-%d'), ''),
			COALESCE(sv.origin, ''),
			COALESCE(sv.destination, ''),
			COALESCE(sv.total_cbm, 0),
			COALESCE(sv.status, ''),
			COALESCE(DATE_FORMAT(sv.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM surveys sv
		LEFT JOIN customers c ON c.id = sv.customer_id
		WHERE `+cond+`
		ORDER BY sv.id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	surveys := []models.Survey{}
	ids := []int64{}
	for rows.Next() {
		var s models.Survey
		if err := rows.Scan(&s.ID, &s.SurveyNo, &s.CustomerID, &s.CustomerName, &s.SurveyDate,
			&s.Origin, &s.Destination, &s.TotalCBM, &s.Status, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		surveys = append(surveys, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(surveys, ids); err != nil {
		return nil, 0, err
	}

	return surveys, total, nil
}

func (r SurveyRepository) attachItems(surveys []models.Survey, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	byID := map[int64]*models.Survey{}
	for i := range surveys {
		args[i] = ids[i]
		byID[surveys[i].ID] = &surveys[i]
	}

	rows, err := r.DB.Query(`
		SELECT survey_id, id, COALESCE(name, ''), COALESCE(quantity, 0),
			COALESCE(width_cm, 0), COALESCE(length_cm, 0), COALESCE(height_cm, 0), COALESCE(cbm, 0)
		FROM survey_cargo_items
		WHERE survey_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var parent int64
		var it models.CargoItem
		if err := rows.Scan(&parent, &it.ID, &it.Name, &it.Quantity, &it.WidthCm, &it.LengthCm, &it.HeightCm, &it.CBM); err != nil {
			return err
		}
		if s := byID[parent]; s != nil {
			s.CargoItems = append(s.CargoItems, it)
		}
	}
	return rows.Err()
}

func (r SurveyRepository) GetByID(id int64) (models.Survey, error) {
	var s models.Survey
	err := r.DB.QueryRow(`
		SELECT
			sv.id,
			COALESCE(sv.survey_no, ''),
			COALESCE(sv.customer_id, 0),
			COALESCE(c.name, ''),
			COALESCE(DATE_FORMAT(sv.survey_date, '%Y-%m-%d'), ''),
			COALESCE(sv.origin, ''),
			COALESCE(sv.destination, ''),
			COALESCE(sv.total_cbm, 0),
			COALESCE(sv.status, ''),
			COALESCE(DATE_FORMAT(sv.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM surveys sv
		LEFT JOIN customers c ON c.id = sv.customer_id
		WHERE sv.id = ?
	`, id).Scan(&s.ID, &s.SurveyNo, &s.CustomerID, &s.CustomerName, &s.SurveyDate,
		&s.Origin, &s.Destination, &s.TotalCBM, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "survey"}
		}
		return s, err
	}

	surveys := []models.Survey{s}
	if err := r.attachItems(surveys, []int64{s.ID}); err != nil {
		return s, err
	}
	return surveys[0], nil
}

func (r SurveyRepository) Create(s models.Survey) (models.Survey, error) {
	s.Recalculate()

	date, err := util.ParseDate(s.SurveyDate)
	if err != nil {
		return s, domain.ValidationError{Field: "surveyDate", Msg: "format tanggal harus YYYY-MM-DD"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return s, err
	}
	defer tx.Rollback()

	var last sql.NullString
	if err := tx.QueryRow(`
		SELECT MAX(survey_no) FROM surveys WHERE survey_no LIKE ? FOR UPDATE
	`, domain.NumberPrefix("SRV", date)).Scan(&last); err != nil {
		return s, err
	}
	s.SurveyNo = domain.FormatNumber("SRV", date, domain.ParseSequence(last.String)+1)

	res, err := tx.Exec(`
		INSERT INTO surveys (survey_no, customer_id, survey_date, origin, destination, total_cbm, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, s.SurveyNo, s.CustomerID, s.SurveyDate, s.Origin, s.Destination, s.TotalCBM, s.Status)
	if err != nil {
		return s, err
	}
	id, _ := res.LastInsertId()

	for _, it := range s.CargoItems {
		if _, err := tx.Exec(`
			INSERT INTO survey_cargo_items (survey_id, name, quantity, width_cm, length_cm, height_cm, cbm)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, it.Name, it.Quantity, it.WidthCm, it.LengthCm, it.HeightCm, it.CBM); err != nil {
			return s, err
		}
	}

	if err := tx.Commit(); err != nil {
		return s, err
	}

	return r.GetByID(id)
}

func (r SurveyRepository) Update(id int64, s models.Survey) (models.Survey, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return s, err
	}
	if strings.TrimSpace(s.SurveyNo) != "" && s.SurveyNo != existing.SurveyNo {
		return s, domain.ValidationError{Field: "surveyNo", Msg: "nomor survey tidak dapat diubah"}
	}

	s.Recalculate()

	tx, err := r.DB.Begin()
	if err != nil {
		return s, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE surveys
		SET customer_id = ?, survey_date = ?, origin = ?, destination = ?, total_cbm = ?, status = ?
		WHERE id = ?
	`, s.CustomerID, s.SurveyDate, s.Origin, s.Destination, s.TotalCBM, s.Status, id); err != nil {
		return s, err
	}

	if _, err := tx.Exec(`DELETE FROM survey_cargo_items WHERE survey_id = ?`, id); err != nil {
		return s, err
	}
	for _, it := range s.CargoItems {
		if _, err := tx.Exec(`
			INSERT INTO survey_cargo_items (survey_id, name, quantity, width_cm, length_cm, height_cm, cbm)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, it.Name, it.Quantity, it.WidthCm, it.LengthCm, it.HeightCm, it.CBM); err != nil {
			return s, err
		}
	}

	if err := tx.Commit(); err != nil {
		return s, err
	}

	return r.GetByID(id)
}

func (r SurveyRepository) Delete(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM survey_cargo_items WHERE survey_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM surveys WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "survey"}
	}

	return tx.Commit()
}
