package usecase

const confirmationTemplate = `
<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
  <div style="background: linear-gradient(135deg, #1E88E5 0%, #43A047 100%); padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Busca Social</h1>
    <p style="color: white; margin: 10px 0 0 0; font-size: 14px;">Cadastro Confirmado ✓</p>
  </div>

  <div style="background-color: white; padding: 30px; border-radius: 0 0 10px 10px;">
    <h2 style="color: #1E88E5; margin-top: 0;">Parabéns, {{.GreetingName}}!</h2>
    <p style="color: #666; line-height: 1.6;">
      Seu cadastro foi enviado com sucesso. Após aprovação, será ativado nas buscas de nossas
      Redes Sociais e WhatsApp e, em até <strong>10 dias úteis</strong>, seu perfil profissional
      poderá ser visível nas primeiras páginas do Google, conforme nossos
      <a href="https://busca.social.br/termos-de-uso" style="color: #1E88E5;">Termos de Uso</a>.
    </p>

    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #43A047;">
      <h3 style="color: #333; margin-top: 0; font-size: 16px;">Dados do seu Cadastro</h3>

      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Número de Série:</strong> {{.SerialNumber}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Tipo de Cadastro:</strong> {{.TipoCadastro}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Nome Completo:</strong> {{.NomeCompleto}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Nome para Divulgar:</strong> {{.NomeDivulgar}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Sexo:</strong> {{.Sexo}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">CPF:</strong> {{.CPF}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">WhatsApp:</strong> {{.WhatsApp}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">E-mail:</strong> {{.Email}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Quantidade de Profissões:</strong> {{.QtdeProfissoes}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Serviço 1:</strong> {{.Servico1}}</p>
      {{if .Servico2}}<p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Serviço 2:</strong> {{.Servico2}}</p>{{end}}
      {{if .Servico3}}<p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Serviço 3:</strong> {{.Servico3}}</p>{{end}}
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Estado:</strong> {{.Estado}}</p>
      {{if .CidadeRJ}}<p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Cidade (RJ):</strong> {{.CidadeRJ}}</p>{{end}}
      {{if .CidadeMG}}<p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Cidade (MG):</strong> {{.CidadeMG}}</p>{{end}}
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Logradouro:</strong> {{.Logradouro}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #1E88E5;">Descrição dos Serviços:</strong></p>
      <p style="margin: 8px 0; color: #666; background-color: white; padding: 10px; border-radius: 5px; border: 1px solid #e0e0e0; white-space: pre-wrap;">{{.Descricao}}</p>
      <p style="margin: 8px 0; color: #666;"><strong style="color: #43A047;">✓ Termos de Uso Aceitos</strong></p>
    </div>

    <div style="background: linear-gradient(135deg, #43A047 0%, #66BB6A 100%); padding: 20px; border-radius: 8px; margin: 20px 0; text-align: center;">
      <h3 style="color: white; margin: 0 0 10px 0; font-size: 18px;">✅ Próximos Passos</h3>
      <p style="color: white; margin: 5px 0; font-size: 14px;">📱 Divulgaremos seu perfil no Facebook, Instagram, LinkedIn e Blogger</p>
      <p style="color: white; margin: 5px 0; font-size: 14px;">📝 Publicaremos no blog manecogomes.com.br</p>
      <p style="color: white; margin: 5px 0; font-size: 14px;">🔍 Seu perfil aparecerá no Google em até 10 dias</p>
    </div>

    <div style="text-align: center; margin: 20px 0;">
      <a href="https://wa.me/5524988418058" style="display: inline-block; background-color: #25D366; color: white; padding: 12px 30px; border-radius: 25px; text-decoration: none; font-weight: bold;">
        💬 Fale Conosco no WhatsApp
      </a>
    </div>

    <div style="border-top: 2px solid #e0e0e0; margin-top: 30px; padding-top: 20px; text-align: center;">
      <p style="color: #999; font-size: 12px; margin: 5px 0;">Este é um <strong>serviço gratuito de utilidade pública</strong></p>
      <p style="color: #999; font-size: 12px; margin: 5px 0;">Maneco Gomes Empreendimentos</p>
      <p style="color: #999; font-size: 12px; margin: 5px 0;"><a href="https://manecogomes.com.br" style="color: #1E88E5;">manecogomes.com.br</a></p>
    </div>
  </div>
</div>
`
