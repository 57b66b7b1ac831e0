package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const lease = "LANDLORD: {{landlordName}}\nTENANT: {{ tenantName }}\nRent: ${{rentAmount}} due {{dueDay}}"

func TestRender(t *testing.T) {
	out := Render(lease, map[string]string{
		"landlordName": "John Landlord",
		"tenantName":   "Alice Tenant",
		"rentAmount":   "2500",
	})
	assert.Equal(t, "LANDLORD: John Landlord\nTENANT: Alice Tenant\nRent: $2500 due {{dueDay}}", out)
}

func TestRenderDoesNotRecurse(t *testing.T) {
	out := Render("{{a}}", map[string]string{"a": "{{b}}", "b": "nope"})
	assert.Equal(t, "{{b}}", out)
}

func TestRenderHTMLEscapesVariablesAndTemplate(t *testing.T) {
	out := RenderHTML("<b>Tenant</b>: {{tenantName}}\nDone", map[string]string{
		"tenantName": `<script>alert("x")</script>`,
	})
	assert.Equal(t, "&lt;b&gt;Tenant&lt;/b&gt;: &lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;<br>\nDone", out)
}

func TestPlaceholdersAndMissing(t *testing.T) {
	assert.Equal(t, []string{"landlordName", "tenantName", "rentAmount", "dueDay"}, Placeholders(lease+" {{rentAmount}}"))
	assert.Equal(t, []string{"dueDay"}, Missing(lease, map[string]string{
		"landlordName": "a", "tenantName": "b", "rentAmount": "c",
	}))
	assert.Empty(t, Placeholders("no variables here"))
}
