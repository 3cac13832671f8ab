package controller

// Screen is one discrete UI state. Exactly one is active at a time and
// every transition is an explicit Controller method.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenHome      Screen = "home"
	ScreenSetup     Screen = "setup"
	ScreenInspect   Screen = "inspect"
	ScreenSignature Screen = "signature"
	ScreenComplete  Screen = "complete"

	ScreenMyRecords      Screen = "my_records"
	ScreenMyRecordDetail Screen = "my_record_detail"

	ScreenAdminHome         Screen = "admin_home"
	ScreenAdminRecords      Screen = "admin_records"
	ScreenAdminChecklist    Screen = "admin_checklist"
	ScreenAdminLocations    Screen = "admin_locations"
	ScreenAdminSubadmins    Screen = "admin_subadmins"
	ScreenAdminWorkTypes    Screen = "admin_work_types"
	ScreenAdminRecordDetail Screen = "admin_record_detail"

	ScreenSubadminHome         Screen = "subadmin_home"
	ScreenSubadminRecords      Screen = "subadmin_records"
	ScreenSubadminRecordDetail Screen = "subadmin_record_detail"
)
