package xlsexport

import (
	"bytes"
	"fmt"
	attendanceapimodels "staff-hub-backend/models/api/attendance"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAttendanceRegister(year int, month time.Month, rows []attendanceapimodels.RegisterRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportAttendanceRegister формирует табель учёта рабочего времени за месяц:
// строка на сотрудника, колонка на день с буквой статуса
func (i impl) ExportAttendanceRegister(year int, month time.Month, rows []attendanceapimodels.RegisterRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).
		AddDate(0, 1, -1).Day()
	headers := registerHeaders(daysInMonth)
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = f.SetColWidth(sheet, "A", "B", 25); err != nil {
		return nil, err
	}
	if len(rows) != 0 {
		row, err = writeRegisterData(f, sheet, rows, daysInMonth, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, fmt.Sprintf("Табель %02d.%v", int(month), year))
	return f.WriteToBuffer()
}

func registerHeaders(daysInMonth int) []string {
	headers := []string{"Табельный номер", "ФИО"}
	for day := 1; day <= daysInMonth; day++ {
		headers = append(headers, fmt.Sprintf("%v", day))
	}
	headers = append(headers, "Часы", "Штраф")
	return headers
}

func writeRegisterData(f *excelize.File, sheet string, rows []attendanceapimodels.RegisterRow, daysInMonth, row int) (int, error) {
	colCount := daysInMonth + 4
	if err := applyDataCellStyle(f, sheet, 1, row+1, colCount, len(rows)+1); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		// "Табельный номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EmployeeCode); err != nil {
			return row, err
		}

		// "ФИО"
		col++
		if err := writeColumn(f, sheet, col, row, item.EmployeeName); err != nil {
			return row, err
		}

		// отметки по дням
		for day := 1; day <= daysInMonth; day++ {
			col++
			status, exist := item.DayStatuses[day]
			if !exist {
				continue
			}
			if err := writeColumn(f, sheet, col, row, status.RegisterMark()); err != nil {
				return row, err
			}
		}

		// "Часы"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f", float64(item.WorkedMinutes)/60)); err != nil {
			return row, err
		}

		// "Штраф"
		col++
		if err := writeColumn(f, sheet, col, row, item.FineAmount); err != nil {
			return row, err
		}
	}
	return row, nil
}
