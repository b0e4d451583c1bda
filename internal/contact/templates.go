package contact

const notificationTemplate = "contact_notification"

// templateData is what both notification bodies are rendered from.
type templateData struct {
	SiteName string
	FullName string
	Email    string
	Message  string
}

const notificationHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, Helvetica, sans-serif; color: #222; margin: 0; padding: 24px; background: #f5f5f5;">
    <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
      <h2 style="margin-top: 0;">New message via {{.SiteName}}</h2>
      <table cellpadding="0" cellspacing="0" style="width: 100%; margin-bottom: 16px;">
        <tr>
          <td style="padding: 4px 12px 4px 0; color: #666;">From</td>
          <td style="padding: 4px 0;">{{.FullName}}</td>
        </tr>
        <tr>
          <td style="padding: 4px 12px 4px 0; color: #666;">Email</td>
          <td style="padding: 4px 0;"><a href="mailto:{{.Email}}">{{.Email}}</a></td>
        </tr>
      </table>
      <div style="border-left: 3px solid #ddd; padding: 8px 16px; white-space: pre-wrap;">{{.Message}}</div>
    </div>
  </body>
</html>
`

const notificationText = `New message via {{.SiteName}}

From:  {{.FullName}}
Email: {{.Email}}

{{.Message}}
`
