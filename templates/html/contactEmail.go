package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderContactForwardEmail generates branded HTML for a forwarded contact
// form message. The sender details go in the header, the message body is
// HTML-escaped and has newlines converted to <br> tags.
func RenderContactForwardEmail(name, email, message string) string {
	escaped := html.EscapeString(message)
	htmlBody := strings.ReplaceAll(escaped, "\n", "<br>")

	safeName := html.EscapeString(name)
	safeEmail := html.EscapeString(email)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>New contact message</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f4f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #1e3a8a 0%%, #2563eb 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .sender { padding: 20px 30px 0 30px; color: #6b7280; font-size: 13px; }
    .content { padding: 20px 30px 40px 30px; color: #111827; line-height: 1.6; font-size: 15px; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New contact message</h1>
    </div>
    <div class="sender">
      <p>From: %s &lt;%s&gt;</p>
    </div>
    <div class="content">
      %s
    </div>
    <div class="footer">
      <p>&copy; RentWheels</p>
    </div>
  </div>
</body>
</html>`, safeName, safeEmail, htmlBody)
}
