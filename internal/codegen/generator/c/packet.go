package cgen

import (
	"strings"

	"github.com/Alia5/flowstub/internal/codegen/generror"
	"github.com/Alia5/flowstub/internal/codegen/schema"
)

var packetTmpl = mustTemplate("packet", `struct {{.Data}} {
    /* TODO: add packet struct fields */
};

static void
{{.Name}}_packet_dispose(const struct sol_flow_packet_type *packet_type,
{{pad .Name "_packet_dispose("}}void *mem)
{
    struct {{.Data}} *{{.Name}} = mem;
    /* TODO: free fields alloced memory */
}

static int
{{.Name}}_packet_init(const struct sol_flow_packet_type *packet_type,
{{pad .Name "_packet_init("}}void *mem, const void *input)
{
    const struct {{.Data}} *in = input;
    struct {{.Data}} *{{.Name}} = mem;

    /* TODO: initialize fields with input content */

    return 0;
}

#define {{.Upper}}_PACKET_TYPE_API_VERSION (1)

static const struct sol_flow_packet_type _{{.Upper}} = {
    .api_version = {{.Upper}}_PACKET_TYPE_API_VERSION,
    .name = "{{.Upper}}",
    .data_size = sizeof(struct {{.Data}}),
    .init = {{.Name}}_packet_init,
    .dispose = {{.Name}}_packet_dispose,
};
static const struct sol_flow_packet_type *{{.Upper}} =
    &_{{.Upper}};

#undef {{.Upper}}_PACKET_TYPE_API_VERSION

static struct sol_flow_packet *
packet_new_{{.Name}}(/* TODO: args to fill fields */)
{
    struct {{.Data}} {{.Name}};

    /* TODO: check for args validity and fill fields */

    return sol_flow_packet_new({{.Upper}}, &{{.Name}});
}

static int
packet_get_{{.Name}}(const struct sol_flow_packet *packet
{{pad "packet_get_" .Name "("}}/* TODO: args to get fields values */)
{
    struct {{.Data}} {{.Name}};
    int ret;

    SOL_NULL_CHECK(packet, -EINVAL);
    if (sol_flow_packet_get_type(packet) != {{.Upper}})
        return -EINVAL;

    ret = sol_flow_packet_get(packet, &{{.Name}});
    SOL_INT_CHECK(ret, != 0, ret);

    /* TODO: set args with fields values */

    return ret;
}

static int
send_{{.Name}}_packet(struct sol_flow_node *src, uint16_t src_port
{{pad "send_" .Name "_packet("}}/* TODO: args to create a new packet */)
{
    struct sol_flow_packet *packet;
    int ret;

    packet = packet_new_{{.Name}}(/* TODO: args */);
    SOL_NULL_CHECK(packet, -ENOMEM);

    ret = sol_flow_send_packet(src, src_port, packet);
    if (ret != 0)
        sol_flow_packet_del(packet);

    return ret;
}

`)

type packetData struct {
	Name  string
	Upper string
	Data  string
}

// declarePackets emits the block of every custom packet type referenced by
// the ports of nt that the run has not declared yet. The block depends on
// the normalized type name only.
func declarePackets(stub *Stub, nt *schema.NodeType, reg *Registry) error {
	ports := make([]schema.Port, 0, len(nt.InPorts)+len(nt.OutPorts))
	ports = append(ports, nt.InPorts...)
	ports = append(ports, nt.OutPorts...)

	for _, p := range ports {
		if !IsCustom(p.DataType) {
			continue
		}
		name := CustomName(p.DataType)
		if name == "" {
			return &generror.UnrecognizedTypeError{Type: p.DataType, NodeType: nt.Name}
		}
		if !reg.Packets.Claim(name) {
			continue
		}
		text, err := render(packetTmpl, packetData{
			Name:  name,
			Upper: strings.ToUpper(name),
			Data:  name + "_packet_data",
		})
		if err != nil {
			return err
		}
		stub.add(SectionPacket, name, text)
	}
	return nil
}
