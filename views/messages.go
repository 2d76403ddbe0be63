package views

import "strings"

// messages holds the page chrome strings in one language.
type messages struct {
	BackToList   string
	MissingParam string
	NotFound     string
	ServerError  string
	StatsTitle   string
	TotalVisits  string
	TodayVisits  string
	TopPages     string
	RecentDays   string
	Password     string
	LogIn        string
	LogOut       string
	LoginFailed  string
}

var koMessages = messages{
	BackToList:   "목록으로",
	MissingParam: "문서 이름이 지정되지 않았습니다.",
	NotFound:     "문서를 찾을 수 없습니다.",
	ServerError:  "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.",
	StatsTitle:   "방문 통계",
	TotalVisits:  "전체 방문",
	TodayVisits:  "오늘 방문",
	TopPages:     "많이 본 페이지",
	RecentDays:   "최근 방문 추이",
	Password:     "비밀번호",
	LogIn:        "로그인",
	LogOut:       "로그아웃",
	LoginFailed:  "비밀번호가 올바르지 않습니다.",
}

var enMessages = messages{
	BackToList:   "Back to list",
	MissingParam: "No document was specified.",
	NotFound:     "Document not found.",
	ServerError:  "Something went wrong. Please try again later.",
	StatsTitle:   "Visit stats",
	TotalVisits:  "Total visits",
	TodayVisits:  "Today",
	TopPages:     "Top pages",
	RecentDays:   "Recent days",
	Password:     "Password",
	LogIn:        "Log in",
	LogOut:       "Log out",
	LoginFailed:  "Incorrect password.",
}

// messagesFor picks the message set for a language tag. Only the "en"
// prefix is distinguished; everything else is Korean.
func messagesFor(lang string) messages {
	if strings.HasPrefix(strings.ToLower(lang), "en") {
		return enMessages
	}
	return koMessages
}
