package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/models"
)

func (a *App) homeScreen(ctx context.Context) error {
	stats := a.ctrl.Stats()
	fmt.Fprintf(a.out, "[홈] %s님  전체 %d건 / 오늘 %d건 / 승인대기 %d건\n",
		a.ctrl.Session().Name, stats.Total, stats.Today, stats.Pending)

	cmd, err := getSimpleText(a.reader, "start(점검 시작) | records(내 기록) | logout | exit", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "start":
		a.ctrl.StartInspection()
	case "records":
		a.ctrl.OpenMyRecords(ctx)
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

func (a *App) setupScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "[점검 준비]")

	hospitals := a.ctrl.Hospitals()
	for i, h := range hospitals {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, h)
	}
	sel, err := getSimpleText(a.reader, "병원 번호를 선택하세요 (뒤로: back)", a.out)
	if err != nil {
		return errQuit
	}
	if sel == "back" {
		a.ctrl.BackFromSetup()
		return nil
	}
	hi, ok := parseIndex(sel, len(hospitals))
	if !ok {
		return errors.New("잘못된 번호입니다")
	}

	equipment, err := getSimpleText(a.reader, "장비명을 입력하세요", a.out)
	if err != nil {
		return errQuit
	}

	workTypes := a.ctrl.WorkTypes()
	for i, w := range workTypes {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, w)
	}
	sel, err = getSimpleText(a.reader, "작업 종류 번호를 선택하세요", a.out)
	if err != nil {
		return errQuit
	}
	wi, ok := parseIndex(sel, len(workTypes))
	if !ok {
		return errors.New("잘못된 번호입니다")
	}

	draft := a.ctrl.Draft()
	date, err := getSimpleText(a.reader, fmt.Sprintf("점검일 (기본값 %s)", draft.Date), a.out)
	if err != nil {
		return errQuit
	}
	if date == "" {
		date = draft.Date
	}

	a.ctrl.ConfirmSetup(ctx, models.SetupDraft{
		Hospital:      hospitals[hi],
		EquipmentName: equipment,
		WorkType:      workTypes[wi],
		Date:          date,
	})
	return nil
}

func (a *App) inspectScreen(ctx context.Context) error {
	sheet := a.ctrl.Sheet()
	draft := a.ctrl.Draft()
	fmt.Fprintf(a.out, "[점검표] %s / %s / %s\n", draft.Hospital, draft.EquipmentName, draft.WorkType)
	for i := 0; i < sheet.Len(); i++ {
		mark := " "
		if v := sheet.Value(i); v != "" {
			mark = badgeMark(v) + " " + v
		}
		fmt.Fprintf(a.out, "%2d. %s  %s\n", i+1, sheet.Item(i).Text, mark)
		if c := sheet.Comment(i); c != "" {
			fmt.Fprintf(a.out, "      조치사항: %s\n", c)
		}
	}

	cmd, err := getSimpleText(a.reader, "항목 번호 선택 | done(완료) | back(뒤로)", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "done":
		if err := a.ctrl.FinishInspection(); err != nil {
			return err
		}
		return nil
	case "back":
		a.ctrl.BackFromInspect()
		return nil
	}

	idx, ok := parseIndex(cmd, sheet.Len())
	if !ok {
		return errors.New("잘못된 번호입니다")
	}
	return a.answerItem(idx)
}

func (a *App) answerItem(idx int) error {
	sheet := a.ctrl.Sheet()
	sel, err := getSimpleText(a.reader,
		fmt.Sprintf("%s\n1. %s  2. %s  3. %s",
			sheet.Item(idx).Text, models.AnswerOK, models.AnswerNormal, models.AnswerNeedsAttention),
		a.out)
	if err != nil {
		return errQuit
	}

	var value string
	switch sel {
	case "1":
		value = models.AnswerOK
	case "2":
		value = models.AnswerNormal
	case "3":
		value = models.AnswerNeedsAttention
	default:
		return errors.New("1, 2, 3 중에서 선택하세요")
	}
	sheet.SetValue(idx, value)

	if value == models.AnswerNeedsAttention {
		comment, err := getSimpleText(a.reader, "조치사항을 입력하세요", a.out)
		if err != nil {
			return errQuit
		}
		sheet.SetComment(idx, comment)
	}
	return nil
}

func (a *App) signatureScreen(ctx context.Context) error {
	signature, err := getMultiline(a.reader, "[서명] 서명 데이터를 붙여넣으세요 (뒤로: back)", a.out)
	if err != nil {
		return errQuit
	}
	if signature == "back" {
		a.ctrl.BackFromSignature()
		return nil
	}

	if err := a.ctrl.Submit(ctx, signature); err != nil {
		return errors.New(api.UserMessage(err, "제출에 실패했습니다. 다시 시도해주세요"))
	}
	return nil
}

func (a *App) completeScreen(ctx context.Context) error {
	_, err := getSimpleText(a.reader, "[제출 완료] 점검이 제출되었습니다. Enter를 누르면 홈으로 돌아갑니다", a.out)
	if err != nil {
		return errQuit
	}
	a.ctrl.CompleteDone(ctx)
	return nil
}

func (a *App) myRecordsScreen(ctx context.Context) error {
	records := a.ctrl.MyRecords()
	fmt.Fprintf(a.out, "[내 점검 기록] %d건\n", len(records))
	for i, r := range records {
		printMySummary(a.out, i, r)
	}

	cmd, err := getSimpleText(a.reader, "기록 번호 선택 | back(홈으로)", a.out)
	if err != nil {
		return errQuit
	}
	if cmd == "back" {
		a.ctrl.BackFromMyRecords()
		return nil
	}

	idx, ok := parseIndex(cmd, len(records))
	if !ok {
		return errors.New("잘못된 번호입니다")
	}
	if err := a.ctrl.OpenMyDetail(ctx, records[idx]); err != nil {
		return errors.New(api.UserMessage(err, "기록을 불러오지 못했습니다"))
	}
	return nil
}

func (a *App) myRecordDetailScreen(ctx context.Context) error {
	d := a.ctrl.MySelected()
	fmt.Fprintf(a.out, "[점검 기록] %s  %s / %s  %s  %s\n",
		d.Date, d.Hospital, d.EquipmentName, d.WorkType, statusTag(d.Status))
	if d.LatestRevision != nil {
		printAnswers(a.out, d.LatestRevision.Answers)
	}

	cmd, err := getSimpleText(a.reader, "edit(수정) | cancel(점검 취소) | back(목록)", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "edit":
		if err := a.ctrl.StartEdit(ctx); err != nil {
			return err
		}
	case "cancel":
		confirm, err := getSimpleText(a.reader, "정말 취소하시겠습니까? (y/n)", a.out)
		if err != nil {
			return errQuit
		}
		if confirm != "y" {
			return nil
		}
		if err := a.ctrl.CancelMyInspection(ctx); err != nil {
			return errors.New(api.UserMessage(err, "취소에 실패했습니다"))
		}
		fmt.Fprintln(a.out, "점검이 취소되었습니다")
	case "back":
		a.ctrl.BackFromMyDetail()
	case "":
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return nil
}
