package usecase

// defaultTermsOfUse is published on first boot so the public site never serves
// an empty terms page.
const defaultTermsOfUse = `TERMOS DE USO - BUSCA SOCIAL

1. ACEITAÇÃO DOS TERMOS

Ao se cadastrar na plataforma Busca Social, você declara que leu, compreendeu e concorda integralmente com estes Termos de Uso. Caso não concorde com qualquer condição aqui descrita, não realize o cadastro.

2. OBJETO

A Busca Social é uma plataforma de divulgação de prestadores de serviços e profissionais autônomos, conectando-os a potenciais clientes. A plataforma não presta os serviços anunciados, não emprega os profissionais cadastrados e não participa das negociações entre as partes.

3. CADASTRO

3.1. O cadastro é gratuito e destinado a maiores de 18 anos.
3.2. O usuário é o único responsável pela veracidade, exatidão e atualização das informações fornecidas, incluindo nome, CPF, telefone de contato e serviços oferecidos.
3.3. A Busca Social poderá recusar, suspender ou excluir cadastros que contenham informações falsas, incompletas ou que violem estes Termos.

4. USO DAS INFORMAÇÕES

4.1. Ao se cadastrar, o usuário autoriza a divulgação de seu nome de exibição, profissão, cidade e telefone de contato nos canais da Busca Social.
4.2. Os dados pessoais coletados são tratados em conformidade com a Lei Geral de Proteção de Dados (Lei nº 13.709/2018).
4.3. O usuário poderá solicitar a exclusão de seu cadastro e de seus dados a qualquer momento pelos canais de atendimento.

5. RESPONSABILIDADES

5.1. A Busca Social não garante a contratação dos profissionais cadastrados nem se responsabiliza pela qualidade, prazo ou resultado dos serviços prestados.
5.2. Eventuais disputas entre prestadores e clientes devem ser resolvidas diretamente entre as partes.
5.3. É vedado o uso da plataforma para fins ilícitos, divulgação de conteúdo ofensivo ou oferta de serviços proibidos por lei.

6. ALTERAÇÕES

Estes Termos podem ser alterados a qualquer momento. A versão vigente estará sempre disponível na plataforma, e o uso continuado após alterações implica concordância com o novo texto.

7. CONTATO

Dúvidas sobre estes Termos podem ser encaminhadas pelos canais oficiais de atendimento da Busca Social.`

// professionSeed is the default catalog applied when the professions table is
// sparse. Names must be unique; inserts that conflict are skipped.
var professionSeed = []string{
	"Açougueiro", "Adestrador de Cães", "Administrador", "Advogado", "Agente de Viagens",
	"Agricultor", "Ajudante de Cozinha", "Ajudante de Obras", "Alfaiate", "Ambulante",
	"Analista de Sistemas", "Animador de Festas", "Antenista", "Apicultor", "Aplicador de Insulfilm",
	"Aplicador de Papel de Parede", "Arquiteto", "Armador de Ferragem", "Arrumadeira", "Artesão",
	"Assentador de Pisos", "Assistente Administrativo", "Assistente Social", "Atendente", "Auxiliar de Limpeza",
	"Auxiliar de Serviços Gerais", "Babá", "Baixista", "Balconista", "Banhista de Pets",
	"Barbeiro", "Barman", "Bartender", "Biomédico", "Bombeiro Civil",
	"Bombeiro Hidráulico", "Borracheiro", "Cabeleireiro", "Calheiro", "Caminhoneiro",
	"Cantor", "Capoteiro", "Carpinteiro", "Carreteiro", "Cartazista",
	"Caseiro", "Chapeiro", "Chaveiro", "Chef de Cozinha", "Churrasqueiro",
	"Cinegrafista", "Classificador de Grãos", "Cobrador", "Colocador de Forro", "Colocador de Gesso",
	"Colocador de Vidros", "Confeiteiro", "Consultor de Vendas", "Consultor Financeiro", "Contador",
	"Copeiro", "Corretor de Imóveis", "Corretor de Seguros", "Costureira", "Cozinheiro",
	"Cuidador de Idosos", "Cumim", "Dançarino", "Dedetizador", "Dentista",
	"Depilador", "Desenhista", "Designer de Interiores", "Designer de Sobrancelhas", "Designer de Unhas",
	"Designer Gráfico", "Despachante", "Detetive Particular", "Diarista", "Digitador",
	"DJ", "Doceira", "Doméstica", "Doulas", "Eletricista",
	"Eletricista de Autos", "Eletricista Industrial", "Eletricista Predial", "Eletrotécnico", "Encanador",
	"Encarregado de Obras", "Enfermeiro", "Engenheiro Civil", "Engenheiro Elétrico", "Engenheiro Mecânico",
	"Entregador", "Escriturário", "Esteticista", "Esteticista Automotivo", "Estofador",
	"Faxineira", "Ferreiro", "Fisioterapeuta", "Florista", "Fonoaudiólogo",
	"Fotógrafo", "Freteiro", "Funileiro", "Garçom", "Gari",
	"Gesseiro", "Gestor de Tráfego", "Governanta", "Grafiteiro", "Guia de Turismo",
	"Guincheiro", "Impermeabilizador", "Instalador de Ar Condicionado", "Instalador de Alarmes", "Instalador de Antenas",
	"Instalador de Câmeras", "Instalador de Drywall", "Instalador de Energia Solar", "Instalador de Som Automotivo", "Instrutor de Autoescola",
	"Instrutor de Informática", "Jardineiro", "Jornalista", "Lavador de Carros", "Lavadeira",
	"Lanterneiro", "Limpador de Piscinas", "Limpador de Vidros", "Locutor", "Manicure",
	"Manobrista", "Maquiador", "Marceneiro", "Marido de Aluguel", "Marmorista",
	"Massagista", "Massoterapeuta", "Mecânico de Autos", "Mecânico de Bicicletas", "Mecânico de Motos",
	"Mecânico Diesel", "Mecânico Industrial", "Mestre de Obras", "Montador de Móveis", "Motoboy",
	"Motorista de Aplicativo", "Motorista Executivo", "Motorista Particular", "Músico", "Nutricionista",
	"Operador de Caixa", "Operador de Empilhadeira", "Operador de Máquinas", "Organizador de Eventos", "Ourives",
	"Padeiro", "Paisagista", "Passadeira", "Pasteleiro", "Pedreiro",
	"Personal Organizer", "Personal Trainer", "Pintor de Autos", "Pintor de Parede", "Pintor Industrial",
	"Piscineiro", "Pizzaiolo", "Podólogo", "Polidor de Autos", "Porteiro",
	"Professor de Educação Física", "Professor de Idiomas", "Professor de Matemática", "Professor de Música", "Professor Particular",
	"Programador", "Promotor de Vendas", "Protético", "Psicólogo", "Publicitário",
	"Quiropraxista", "Radialista", "Recepcionista", "Recreador Infantil", "Refrigerista",
	"Relojoeiro", "Representante Comercial", "Restaurador de Móveis", "Revisor de Textos", "Salgadeira",
	"Sapateiro", "Secretária", "Segurança", "Serralheiro", "Servente de Pedreiro",
	"Soldador", "Sommelier", "Sonorizador", "Sushiman", "Tapeceiro",
	"Tatuador", "Taxista", "Técnico em Celulares", "Técnico em Eletrônica", "Técnico em Eletrodomésticos",
	"Técnico em Enfermagem", "Técnico em Informática", "Técnico em Manutenção", "Técnico em Redes", "Técnico em Refrigeração",
	"Técnico em Segurança do Trabalho", "Telhadista", "Terapeuta Ocupacional", "Tosador de Pets", "Tradutor",
	"Treinador Esportivo", "Turismólogo", "Veterinário", "Vidraceiro", "Vigilante",
	"Web Designer", "Zelador",
}
