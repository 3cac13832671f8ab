package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/models"
)

func (a *App) adminHomeScreen(ctx context.Context) error {
	sess := a.ctrl.Session()
	fmt.Fprintf(a.out, "[관리자 홈] %s님  점검 기록 %d건\n", sess.Name, len(a.ctrl.Records()))

	menu := "records(기록 조회) | export(엑셀) | exportpdf(PDF) | logout | exit"
	if sess.IsMasterAdmin() {
		menu = "records | subadmins | checklist | locations | worktypes | export | exportpdf | logout | exit"
	}
	cmd, err := getSimpleText(a.reader, menu, a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "records":
		a.ctrl.OpenRecords(ctx)
	case "subadmins":
		a.ctrl.OpenSubadmins(ctx)
	case "checklist":
		a.ctrl.OpenChecklistManager()
	case "locations":
		a.ctrl.OpenLocationManager()
	case "worktypes":
		a.ctrl.OpenWorkTypeManager()
	case "export":
		return a.export(ctx, api.ExportXLSX)
	case "exportpdf":
		return a.export(ctx, api.ExportPDF)
	case "logout":
		a.ctrl.Logout(ctx)
	case "exit", "quit":
		return errQuit
	case "help", "":
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return nil
}

func (a *App) export(ctx context.Context, f api.ExportFormat) error {
	path, err := a.ctrl.Export(ctx, f)
	if err != nil {
		return errors.New(api.UserMessage(err, "보고서 다운로드에 실패했습니다"))
	}
	fmt.Fprintln(a.out, "저장됨:", path)
	return nil
}

func (a *App) recordsScreen(ctx context.Context) error {
	records := a.ctrl.Records()
	fmt.Fprintf(a.out, "[점검 기록] 최근 1개월 %d건\n", len(records))
	for i, r := range records {
		printRecordRow(a.out, i, r)
	}

	cmd, err := getSimpleText(a.reader, "기록 번호 선택 | back(홈으로)", a.out)
	if err != nil {
		return errQuit
	}
	if cmd == "back" {
		a.ctrl.BackToAdminHome(ctx)
		return nil
	}

	idx, ok := parseIndex(cmd, len(records))
	if !ok {
		return errors.New("잘못된 번호입니다")
	}
	a.ctrl.OpenRecordDetail(records[idx])
	return nil
}

func (a *App) recordDetailScreen(ctx context.Context) error {
	r := a.ctrl.Selected()
	name := r.Name
	if name == "" {
		name = r.UserName
	}
	fmt.Fprintf(a.out, "[기록 상세] %s  %s  %s / %s  %s  %s\n",
		r.Date, name, r.Hospital, r.EquipmentName, r.WorkType, statusTag(r.Status))
	printAnswers(a.out, r.Results)
	if r.SubadminName != "" {
		fmt.Fprintf(a.out, "승인자: %s\n", r.SubadminName)
	}
	if r.RejectReason != "" {
		fmt.Fprintf(a.out, "반려 사유: %s\n", r.RejectReason)
	}

	cmd, err := getSimpleText(a.reader, "approve(승인) | reject(반려) | back(목록)", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "approve":
		signature, err := getMultiline(a.reader, "승인 서명 데이터를 붙여넣으세요", a.out)
		if err != nil {
			return errQuit
		}
		if err := a.ctrl.Approve(ctx, signature); err != nil {
			return errors.New(api.UserMessage(err, "승인에 실패했습니다"))
		}
		fmt.Fprintln(a.out, "승인되었습니다")
	case "reject":
		reason, err := getMultiline(a.reader, "반려 사유를 입력하세요", a.out)
		if err != nil {
			return errQuit
		}
		if err := a.ctrl.Reject(ctx, reason); err != nil {
			return errors.New(api.UserMessage(err, "반려에 실패했습니다"))
		}
		fmt.Fprintln(a.out, "반려되었습니다")
	case "back":
		a.ctrl.BackFromRecordDetail()
	case "":
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return nil
}

func (a *App) subadminsScreen(ctx context.Context) error {
	subs := a.ctrl.Subadmins()
	fmt.Fprintf(a.out, "[서브관리자 관리] %d명\n", len(subs))
	for i, s := range subs {
		fmt.Fprintf(a.out, "%2d. %s (%s)  담당: %s\n",
			i+1, s.Name, s.PhoneLast4, strings.Join(s.Categories, ", "))
	}

	cmd, err := getSimpleText(a.reader, "add(등록) | edit(수정) | delete(삭제) | back(홈으로)", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "add":
		req, err := a.readSubadmin()
		if err != nil {
			return err
		}
		if err := a.ctrl.CreateSubadmin(ctx, req); err != nil {
			return errors.New(api.UserMessage(err, "등록에 실패했습니다"))
		}
	case "edit":
		idx, err := a.pickSubadmin(subs)
		if err != nil {
			return err
		}
		req, err := a.readSubadmin()
		if err != nil {
			return err
		}
		if err := a.ctrl.UpdateSubadmin(ctx, subs[idx].ID, req); err != nil {
			return errors.New(api.UserMessage(err, "수정에 실패했습니다"))
		}
	case "delete":
		idx, err := a.pickSubadmin(subs)
		if err != nil {
			return err
		}
		if err := a.ctrl.DeleteSubadmin(ctx, subs[idx].ID); err != nil {
			return errors.New(api.UserMessage(err, "삭제에 실패했습니다"))
		}
	case "back":
		a.ctrl.BackToAdminHome(ctx)
	case "":
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return nil
}

func (a *App) pickSubadmin(subs []models.Subadmin) (int, error) {
	sel, err := getSimpleText(a.reader, "서브관리자 번호를 선택하세요", a.out)
	if err != nil {
		return 0, errQuit
	}
	idx, ok := parseIndex(sel, len(subs))
	if !ok {
		return 0, errors.New("잘못된 번호입니다")
	}
	return idx, nil
}

func (a *App) readSubadmin() (api.SubadminRequest, error) {
	var req api.SubadminRequest

	name, err := getSimpleText(a.reader, "이름", a.out)
	if err != nil {
		return req, errQuit
	}
	phone, err := getSimpleText(a.reader, "휴대폰 번호 뒤 4자리", a.out)
	if err != nil {
		return req, errQuit
	}
	categories, err := getSimpleText(a.reader, "담당 작업 종류 (쉼표로 구분)", a.out)
	if err != nil {
		return req, errQuit
	}

	req.Name = name
	req.PhoneLast4 = phone
	for _, c := range strings.Split(categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			req.Categories = append(req.Categories, c)
		}
	}
	return req, nil
}

func (a *App) checklistManagerScreen(ctx context.Context) error {
	workTypes := a.ctrl.WorkTypes()
	for i, w := range workTypes {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, w)
	}
	sel, err := getSimpleText(a.reader, "[점검표 관리] 작업 종류 번호 선택 | back(홈으로)", a.out)
	if err != nil {
		return errQuit
	}
	if sel == "back" {
		a.ctrl.BackToAdminHome(ctx)
		return nil
	}
	wi, ok := parseIndex(sel, len(workTypes))
	if !ok {
		return errors.New("잘못된 번호입니다")
	}

	text, err := getMultiline(a.reader, "점검 항목을 한 줄에 하나씩 입력하세요", a.out)
	if err != nil {
		return errQuit
	}
	var items []models.ChecklistItem
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, models.ChecklistItem{Text: line})
		}
	}
	if len(items) == 0 {
		return errors.New("점검 항목이 없습니다")
	}

	if err := a.ctrl.SaveChecklist(ctx, workTypes[wi], items); err != nil {
		return errors.New(api.UserMessage(err, "점검표 저장에 실패했습니다"))
	}
	fmt.Fprintln(a.out, "저장되었습니다")
	a.ctrl.BackToAdminHome(ctx)
	return nil
}

func (a *App) locationManagerScreen(ctx context.Context) error {
	return a.listManagerScreen(ctx, "[병원 관리]", a.ctrl.Hospitals(), a.ctrl.SaveHospitals)
}

func (a *App) workTypeManagerScreen(ctx context.Context) error {
	return a.listManagerScreen(ctx, "[작업 종류 관리]", a.ctrl.WorkTypes(), a.ctrl.SaveWorkTypes)
}

// listManagerScreen edits one reference list as a whole: the entered lines
// replace the current list.
func (a *App) listManagerScreen(ctx context.Context, title string, current []string,
	save func(context.Context, []string) error) error {

	fmt.Fprintln(a.out, title)
	for i, v := range current {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, v)
	}

	text, err := getMultiline(a.reader, "새 목록을 한 줄에 하나씩 입력하세요 (빈 입력: 뒤로)", a.out)
	if err != nil {
		return errQuit
	}
	if text == "" {
		a.ctrl.BackToAdminHome(ctx)
		return nil
	}

	var values []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			values = append(values, line)
		}
	}

	if err := save(ctx, values); err != nil {
		return errors.New(api.UserMessage(err, "저장에 실패했습니다"))
	}
	fmt.Fprintln(a.out, "저장되었습니다")
	a.ctrl.BackToAdminHome(ctx)
	return nil
}
