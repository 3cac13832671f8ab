package api

import "github.com/safecheck/safecheck/internal/client/models"

// Fallback reference data, returned when a read fails and the local cache
// is empty. The lists are deliberately never empty so the setup screen
// stays usable without a server.

var fallbackHospitals = []string{
	"서울대병원",
	"아산병원",
	"삼성서울병원",
	"세브란스병원",
	"경희대병원",
}

var fallbackWorkTypes = []string{
	"X-ray 설치작업",
	"MR 설치작업",
	"CT 작업",
	"정기 유지보수",
}

var fallbackChecklist = []models.ChecklistItem{
	{ID: "1", Text: "작업 전 안전 보호구(헬멧, 안전화 등)를 착용하였는가?", Order: 1, Code: "a"},
	{ID: "2", Text: "작업 전 본인의 건강 상태는 양호한가?", Order: 2, Code: "b"},
	{ID: "3", Text: "사용할 공구 및 장비의 육안 점검을 실시하였는가?", Order: 3, Code: "c"},
	{ID: "4", Text: "사전 안전수칙 및 작업 절차를 숙지하였는가?", Order: 4, Code: "d"},
	{ID: "5", Text: "작업장 주변 정리정돈 및 위험 요소 제거를 완료했는가?", Order: 5, Code: "e"},
}
