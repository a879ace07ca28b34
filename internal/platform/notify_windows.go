//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell that shows a toast. A tagged toast
// replaces the previous one with the same tag in the action center.
func toastScript(title, body string, opts Options) string {
	var sb strings.Builder
	kind := "ToastText02"
	if strings.TrimSpace(opts.IconPath) != "" {
		kind = "ToastImageAndText02"
	}
	sb.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&sb, `$x = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, kind)
	fmt.Fprintf(&sb, `$t = $x.GetElementsByTagName("text"); $t.Item(0).AppendChild($x.CreateTextNode(%s)) > $null; $t.Item(1).AppendChild($x.CreateTextNode(%s)) > $null; `,
		psQuote(title), psQuote(body))
	if kind == "ToastImageAndText02" {
		fmt.Fprintf(&sb, `$x.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(opts.IconPath))
	}
	sb.WriteString(`$n = [Windows.UI.Notifications.ToastNotification]::new($x); `)
	fmt.Fprintf(&sb, `$n.ExpirationTime = [DateTimeOffset]::Now.AddSeconds(%d); `, int(opts.timeout().Seconds()))
	if opts.Tag != "" {
		fmt.Fprintf(&sb, `$n.Tag = %s; $n.Group = %s; `, psQuote(opts.Tag), psQuote(opts.appName()))
	}
	fmt.Fprintf(&sb, `[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($n);`, psQuote(opts.appName()))
	return sb.String()
}

// Notify displays a toast notification.
func Notify(title, body string, opts Options) error {
	return exec.Command("powershell.exe", "-NoProfile", "-Command", toastScript(title, body, opts)).Run()
}
