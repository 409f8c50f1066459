package log

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
// 헬스체크 서버는 요청마다 로그가 쌓이므로 디버그 로그는 별도 파일로 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		Rotation: Rotation{
			MaxAgeDays: 30,
			MaxSizeMB:  100,
			MaxBackups: 20,
		},

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: DebugLevel,

		Rotation: Rotation{
			MaxAgeDays: 1,
			MaxSizeMB:  50,
			MaxBackups: 5,
		},

		EnableConsoleLog: true,

		ReportCaller: true,
	}
}
